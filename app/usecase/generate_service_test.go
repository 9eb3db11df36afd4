package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infragen/app/usecase"
	"infragen/internal/domain/entity"
	"infragen/internal/infrastructure/llm"
	"infragen/internal/infrastructure/store/memory"
)

type fakeGenerator struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeGenerator) Name() string { return "fake" }

func newService(gen *fakeGenerator) (*usecase.GenerateService, *usecase.ArtifactService) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewResultStore()
	return usecase.NewGenerateService(store, gen, logger), usecase.NewArtifactService(store)
}

func TestGenerateStoresResult(t *testing.T) {
	gen := &fakeGenerator{reply: "FROM python:3.12\n"}
	svc, artifacts := newService(gen)
	ctx := context.Background()

	res, err := svc.Generate(ctx, "sid", entity.CategoryDocker, "a flask app with redis")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "FROM python:3.12\n", res.Content)
	assert.Equal(t, entity.CategoryDocker, res.Category)
	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.lastPrompt, "a flask app with redis")

	stored, err := artifacts.GetResult(ctx, "sid")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "FROM python:3.12\n", stored.Content)
}

func TestGenerateEmptyRequirements(t *testing.T) {
	gen := &fakeGenerator{reply: "never used"}
	svc, artifacts := newService(gen)
	ctx := context.Background()

	for _, req := range []string{"", "   ", "\n\t"} {
		_, err := svc.Generate(ctx, "sid", entity.CategoryAnsible, req)
		assert.ErrorIs(t, err, usecase.ErrEmptyRequirements)
	}
	assert.Zero(t, gen.calls, "blank requirements must not reach the LLM")

	stored, err := artifacts.GetResult(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestGenerateMissingCredential(t *testing.T) {
	gen := &fakeGenerator{err: llm.ErrMissingAPIKey}
	svc, artifacts := newService(gen)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "sid", entity.CategoryTerraform, "a vpc")
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)

	stored, err := artifacts.GetResult(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestGenerateOverwritesPrevious(t *testing.T) {
	gen := &fakeGenerator{reply: "first"}
	svc, artifacts := newService(gen)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "sid", entity.CategoryDocker, "v1")
	require.NoError(t, err)

	gen.reply = "second"
	_, err = svc.Generate(ctx, "sid", entity.CategoryDocker, "v2")
	require.NoError(t, err)

	stored, err := artifacts.GetResult(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "second", stored.Content)
}

func TestGenerateFailureKeepsPreviousResult(t *testing.T) {
	gen := &fakeGenerator{reply: "keep me"}
	svc, artifacts := newService(gen)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "sid", entity.CategoryDocker, "v1")
	require.NoError(t, err)

	gen.err = errors.New("service exploded")
	_, err = svc.Generate(ctx, "sid", entity.CategoryDocker, "v2")
	require.Error(t, err)

	stored, err := artifacts.GetResult(ctx, "sid")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "keep me", stored.Content)
}

func TestArtifactView(t *testing.T) {
	gen := &fakeGenerator{reply: "resource \"aws_vpc\" \"main\" {}"}
	svc, artifacts := newService(gen)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "sid", entity.CategoryTerraform, "a vpc")
	require.NoError(t, err)

	artifact, err := artifacts.GetArtifact(ctx, "sid")
	require.NoError(t, err)
	require.NotNil(t, artifact)
	assert.Equal(t, "terraform_generated.tf", artifact.FileName)
	assert.Equal(t, "resource \"aws_vpc\" \"main\" {}", artifact.Content)
	assert.Contains(t, artifact.Hint, "terraform init")
}

func TestClearResult(t *testing.T) {
	gen := &fakeGenerator{reply: "x"}
	svc, artifacts := newService(gen)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "sid", entity.CategoryAnsible, "something")
	require.NoError(t, err)

	require.NoError(t, artifacts.ClearResult(ctx, "sid"))

	stored, err := artifacts.GetResult(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, stored)

	artifact, err := artifacts.GetArtifact(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, artifact)
}
