package entity

import (
	"time"
	"unicode/utf8"
)

// MaxContentLength is the character limit shared by post and comment bodies.
const MaxContentLength = 280

// Post is a community feed entry. Comments live as embedded subdocuments;
// there is no separate comments collection.
type Post struct {
	ID        string       `bson:"_id,omitempty" json:"id"`
	Title     string       `bson:"title" json:"title"`
	Content   string       `bson:"content" json:"content"`
	EventDate *time.Time   `bson:"event_date,omitempty" json:"eventDate,omitempty"`
	Location  string       `bson:"location,omitempty" json:"location,omitempty"`
	AuthorID  string       `bson:"author_id" json:"authorId"`
	Author    *UserSummary `bson:"author,omitempty" json:"author,omitempty"`
	IsPinned  bool         `bson:"is_pinned" json:"isPinned"`
	Comments  []Comment    `bson:"comments" json:"comments"`
	CreatedAt time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updatedAt"`
}

// Comment is an embedded subdocument of Post.
type Comment struct {
	ID         string    `bson:"_id" json:"id"`
	Content    string    `bson:"content" json:"content"`
	AuthorID   string    `bson:"author_id" json:"authorId"`
	AuthorName string    `bson:"author_name" json:"authorName"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// ContentTooLong reports whether s exceeds the shared 280-character limit.
func ContentTooLong(s string) bool {
	return utf8.RuneCountInString(s) > MaxContentLength
}
