package models

import (
	"time"
)

// Comment represents a comment embedded in a publication.
// IDs are unique only within the parent publication.
type Comment struct {
	ID       int        `json:"id"`
	User     string     `json:"usuario"`
	Content  string     `json:"contenido"`
	PostedAt time.Time  `json:"fechaComentario"`
	EditedAt *time.Time `json:"fechaModificacion,omitempty"`
	Likes    int        `json:"likes"`
}

// NextCommentID returns the ID for a new comment: one past the highest
// existing ID, starting at 1. Deleted IDs are never reused.
func NextCommentID(comments []Comment) int {
	max := 0
	for _, c := range comments {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

// SumLikes returns the total likes across a comment list. The stored
// popularity counter is maintained incrementally but must always equal
// this sum.
func SumLikes(comments []Comment) int {
	total := 0
	for _, c := range comments {
		total += c.Likes
	}
	return total
}
