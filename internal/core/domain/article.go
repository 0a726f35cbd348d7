package domain

import "time"

// Article is a published piece of content. CategoryIDs is a plain reference
// list; category existence is checked at write time, not enforced afterwards.
type Article struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Content     string     `json:"content" bson:"content"`
	Thumbnail   string     `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	AuthorID    string     `json:"author_id" bson:"author_id"`
	CategoryIDs []string   `json:"category_ids,omitempty" bson:"category_ids,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty" bson:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}
