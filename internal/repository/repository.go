package repository

import (
	"context"

	"github.com/publications-api/internal/database"
	"github.com/publications-api/internal/models"
)

// PublicationRepository defines the interface for publication data
// operations. Lookups return (nil, nil) when no record exists; callers
// must check for absence explicitly. Comment mutations always rewrite
// the entire comment list together with the popularity counter in a
// single update.
type PublicationRepository interface {
	GetAll(ctx context.Context) ([]*models.Publication, error)
	GetByID(ctx context.Context, id string) (*models.Publication, error)
	Create(ctx context.Context, pub *models.Publication) error
	UpdateContent(ctx context.Context, id, title, content string) error
	UpdateComments(ctx context.Context, id string, comments []models.Comment, popularity int) error
	Delete(ctx context.Context, id string) error
	TopByPopularity(ctx context.Context, limit int) ([]*models.Publication, error)
}

// UserRepository defines the interface for user account operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Publication PublicationRepository
	User        UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Publication: NewPublicationRepo(db),
		User:        NewUserRepo(db),
	}
}
