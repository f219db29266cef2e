package model

import "time"

// KnowledgeDocument is an opaque freeform text consumed by the suggestion
// engine. The Context Document variant is also rewritten by amalgamation;
// Version and CreatedAt survive rewrites, UpdatedAt is refreshed.
type KnowledgeDocument struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Text      string    `json:"text"`
}

// WithText returns a copy carrying the new text with UpdatedAt refreshed.
func (d KnowledgeDocument) WithText(text string, now time.Time) KnowledgeDocument {
	d.Text = text
	d.UpdatedAt = now

	return d
}
