package entity

import (
	"time"

	"github.com/google/uuid"
)

// Artifact is one generated visual explanation. Created once when a
// generation request completes, never mutated, removed only by the
// retention sweep.
type Artifact struct {
	ID uuid.UUID `json:"id"`

	UserID      string `json:"user_id"`
	Subject     string `json:"subject"`
	Topic       string `json:"topic"`
	Description string `json:"description"`

	// ImageURL is a stable locator: a provider-hosted URL, a blob store
	// URL, or a data URI when blob upload was unavailable.
	ImageURL    string `json:"image_url"`
	Explanation string `json:"explanation"`
	Provider    string `json:"provider"`

	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ArtifactRef is the slice of an artifact row the retention sweep needs.
type ArtifactRef struct {
	ID       uuid.UUID
	ImageURL string
}
