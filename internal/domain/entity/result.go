package entity

import "time"

// Result is the most recent text returned by the generation service for a
// session. A new successful generation overwrites it; it never persists
// across process restarts.
type Result struct {
	Category  Category  `json:"category"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Artifact is the downloadable file view of a Result.
type Artifact struct {
	Category Category `json:"category"`
	FileName string   `json:"file_name"`
	Content  string   `json:"content"`
	Hint     string   `json:"hint"`
}

// ArtifactFor derives the download view of a result.
func ArtifactFor(res *Result) *Artifact {
	return &Artifact{
		Category: res.Category,
		FileName: res.Category.FileName(),
		Content:  res.Content,
		Hint:     res.Category.UsageHint(),
	}
}
