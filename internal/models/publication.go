package models

import (
	"time"
)

// Publication represents a post with its embedded comment thread.
// JSON field names follow the public API contract; the comment list is
// stored as a single JSONB document in the publications table.
type Publication struct {
	ID         string    `json:"id" db:"id"`
	Author     string    `json:"author" db:"author"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	DatePub    time.Time `json:"datePub" db:"date_pub"`
	Comments   []Comment `json:"comentarios" db:"-"` // Stored as JSONB in DB
	Popularity int       `json:"popularidad" db:"popularity"`
}

// TrendingLimit is the number of publications returned by the trending query
const TrendingLimit = 5
