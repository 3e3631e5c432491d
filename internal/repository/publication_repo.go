package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/publications-api/internal/database"
	"github.com/publications-api/internal/models"
)

// publicationRepo is the concrete implementation of PublicationRepository
type publicationRepo struct {
	db *database.DB
}

// NewPublicationRepo creates a new publication repository
func NewPublicationRepo(db *database.DB) PublicationRepository {
	return &publicationRepo{db: db}
}

// GetAll retrieves every publication
func (r *publicationRepo) GetAll(ctx context.Context) ([]*models.Publication, error) {
	query := `
		SELECT id, author, title, content, date_pub, comments, popularity
		FROM publications
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPublications(rows)
}

// GetByID retrieves a publication by ID, returning (nil, nil) when absent
func (r *publicationRepo) GetByID(ctx context.Context, id string) (*models.Publication, error) {
	query := `
		SELECT id, author, title, content, date_pub, comments, popularity
		FROM publications WHERE id = $1
	`

	var pub models.Publication
	var commentsJSON []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pub.ID, &pub.Author, &pub.Title, &pub.Content,
		&pub.DatePub, &commentsJSON, &pub.Popularity,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(commentsJSON, &pub.Comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments for publication %s: %w", id, err)
	}

	return &pub, nil
}

// Create inserts a new publication, assigning its ID
func (r *publicationRepo) Create(ctx context.Context, pub *models.Publication) error {
	pub.ID = uuid.New().String()

	commentsJSON, err := json.Marshal(pub.Comments)
	if err != nil {
		return err
	}
	if pub.Comments == nil {
		commentsJSON = []byte("[]")
	}

	query := `
		INSERT INTO publications (id, author, title, content, date_pub, comments, popularity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.ExecContext(ctx, query,
		pub.ID, pub.Author, pub.Title, pub.Content,
		pub.DatePub, commentsJSON, pub.Popularity,
	)
	return err
}

// UpdateContent replaces only the title and content of a publication
func (r *publicationRepo) UpdateContent(ctx context.Context, id, title, content string) error {
	query := `UPDATE publications SET title = $2, content = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, title, content)
	return err
}

// UpdateComments rewrites the whole comment list and the popularity
// counter in one statement
func (r *publicationRepo) UpdateComments(ctx context.Context, id string, comments []models.Comment, popularity int) error {
	commentsJSON, err := json.Marshal(comments)
	if err != nil {
		return err
	}
	if comments == nil {
		commentsJSON = []byte("[]")
	}

	query := `UPDATE publications SET comments = $2, popularity = $3 WHERE id = $1`
	_, err = r.db.ExecContext(ctx, query, id, commentsJSON, popularity)
	return err
}

// Delete removes a publication and its embedded comments
func (r *publicationRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM publications WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// TopByPopularity retrieves up to limit publications ordered by
// popularity descending. Tie order is whatever the database returns.
func (r *publicationRepo) TopByPopularity(ctx context.Context, limit int) ([]*models.Publication, error) {
	query := `
		SELECT id, author, title, content, date_pub, comments, popularity
		FROM publications ORDER BY popularity DESC LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPublications(rows)
}

func scanPublications(rows *sql.Rows) ([]*models.Publication, error) {
	var pubs []*models.Publication

	for rows.Next() {
		var pub models.Publication
		var commentsJSON []byte

		if err := rows.Scan(
			&pub.ID, &pub.Author, &pub.Title, &pub.Content,
			&pub.DatePub, &commentsJSON, &pub.Popularity,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(commentsJSON, &pub.Comments); err != nil {
			return nil, fmt.Errorf("failed to decode comments for publication %s: %w", pub.ID, err)
		}

		pubs = append(pubs, &pub)
	}

	return pubs, rows.Err()
}
