package handler

import "time"

// articleRequest is shared by create and update: the contract replaces the
// full document on update.
type articleRequest struct {
	Title       string     `json:"title"        validate:"required,min=5,max=100"`
	Content     string     `json:"content"      validate:"required,min=10"`
	Thumbnail   string     `json:"thumbnail"    validate:"omitempty,url"`
	AuthorID    string     `json:"author_id"    validate:"required,uuid"`
	CategoryIDs []string   `json:"category_ids" validate:"omitempty,dive,uuid"`
	PublishedAt *time.Time `json:"published_at"`
}
