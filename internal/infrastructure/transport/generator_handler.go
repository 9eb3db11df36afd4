package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"infragen/app/usecase"
	"infragen/internal/domain/entity"
	"infragen/internal/infrastructure/llm"
	"infragen/internal/infrastructure/metrics"
)

const sessionCookie = "sid"

type GeneratorHandler struct {
	generateService usecase.GenerateUsecase
	artifactService usecase.ArtifactUsecase
	logger          *slog.Logger
}

func NewGeneratorHandler(
	generateService usecase.GenerateUsecase,
	artifactService usecase.ArtifactUsecase,
	logger *slog.Logger,
) *GeneratorHandler {
	return &GeneratorHandler{
		generateService: generateService,
		artifactService: artifactService,
		logger:          logger,
	}
}

func (h *GeneratorHandler) withMetrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := r.URL.Path
		method := r.Method

		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rw, r)

		statusStr := strconv.Itoa(rw.status)
		metrics.ObserveHTTPRequest(method, path, statusStr, time.Since(start))

		if rw.status >= 400 {
			metrics.IncHTTPError(method, path, statusStr)
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (h *GeneratorHandler) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/categories", h.withMetrics(h.handleListCategories)).Methods(http.MethodGet)
	api.HandleFunc("/generate", h.withMetrics(h.handleGenerate)).Methods(http.MethodPost)
	api.HandleFunc("/result", h.withMetrics(h.handleGetResult)).Methods(http.MethodGet)
	api.HandleFunc("/result", h.withMetrics(h.handleClearResult)).Methods(http.MethodDelete)
	api.HandleFunc("/result/download", h.withMetrics(h.handleDownload)).Methods(http.MethodGet)
	api.HandleFunc("/health", h.withMetrics(h.handleHealth)).Methods(http.MethodGet)

	// Prometheus
	r.Handle("/metrics", promhttp.Handler())
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

// sessionID returns the request's session id, minting a cookie for new
// sessions.
func (h *GeneratorHandler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}

type categoryInfo struct {
	Name        string `json:"name"`
	Caption     string `json:"caption"`
	Placeholder string `json:"placeholder"`
	Hint        string `json:"hint"`
	FileName    string `json:"file_name"`
}

// GET /api/v1/categories
func (h *GeneratorHandler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats := entity.Categories()
	out := make([]categoryInfo, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryInfo{
			Name:        string(c),
			Caption:     c.Caption(),
			Placeholder: c.Placeholder(),
			Hint:        c.UsageHint(),
			FileName:    c.FileName(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type generateReq struct {
	Category     string `json:"category"`
	Requirements string `json:"requirements"`
}

type generateResp struct {
	Result   *entity.Result `json:"result"`
	FileName string         `json:"file_name"`
	Hint     string         `json:"hint"`
}

// POST /api/v1/generate
func (h *GeneratorHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad request body: %w", err))
		return
	}

	category, err := entity.ParseCategory(req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sid := h.sessionID(w, r)
	res, err := h.generateService.Generate(r.Context(), sid, category, req.Requirements)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyRequirements):
			writeError(w, http.StatusBadRequest, usecase.ErrEmptyRequirements)
		case errors.Is(err, llm.ErrMissingAPIKey):
			writeError(w, http.StatusUnauthorized, llm.ErrMissingAPIKey)
		default:
			h.logger.Error("generate failed", "session_id", sid, "err", err)
			writeError(w, http.StatusBadGateway, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, generateResp{
		Result:   res,
		FileName: category.FileName(),
		Hint:     category.UsageHint(),
	})
}

// GET /api/v1/result
func (h *GeneratorHandler) handleGetResult(w http.ResponseWriter, r *http.Request) {
	sid := h.sessionID(w, r)
	res, err := h.artifactService.GetResult(r.Context(), sid)
	if err != nil {
		h.logger.Error("get result failed", "session_id", sid, "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, errors.New("no result for session"))
		return
	}
	writeJSON(w, http.StatusOK, generateResp{
		Result:   res,
		FileName: res.Category.FileName(),
		Hint:     res.Category.UsageHint(),
	})
}

// DELETE /api/v1/result
func (h *GeneratorHandler) handleClearResult(w http.ResponseWriter, r *http.Request) {
	sid := h.sessionID(w, r)
	if err := h.artifactService.ClearResult(r.Context(), sid); err != nil {
		h.logger.Error("clear result failed", "session_id", sid, "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/result/download
//
// Serves the artifact as plain text so markup inside the model reply stays
// inert.
func (h *GeneratorHandler) handleDownload(w http.ResponseWriter, r *http.Request) {
	sid := h.sessionID(w, r)
	artifact, err := h.artifactService.GetArtifact(r.Context(), sid)
	if err != nil {
		h.logger.Error("download failed", "session_id", sid, "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if artifact == nil {
		writeError(w, http.StatusNotFound, errors.New("no result for session"))
		return
	}

	metrics.IncDownload(string(artifact.Category))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(artifact.Content))
}

// GET /api/v1/health
func (h *GeneratorHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"ok": true,
		"ts": time.Now().UTC(),
	}
	writeJSON(w, http.StatusOK, status)
}
