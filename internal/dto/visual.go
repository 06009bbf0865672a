package dto

import "strings"

type GenerateVisualRequest struct {
	Subject     string `json:"subject" validate:"required"`
	Topic       string `json:"topic" validate:"required"`
	Description string `json:"description"`
	UserID      string `json:"user_id" validate:"required"`
}

// Normalize trims surrounding whitespace so that blank-but-present
// fields fail validation the same way missing ones do.
func (r *GenerateVisualRequest) Normalize() {
	r.Subject = strings.TrimSpace(r.Subject)
	r.Topic = strings.TrimSpace(r.Topic)
	r.Description = strings.TrimSpace(r.Description)
	r.UserID = strings.TrimSpace(r.UserID)
}
