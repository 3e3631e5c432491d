package service

import (
	"context"

	"github.com/publications-api/internal/config"
	"github.com/publications-api/internal/models"
	"github.com/publications-api/internal/repository"
	"github.com/rs/zerolog"
)

// PublicationService defines the interface for publication lifecycle operations
type PublicationService interface {
	List(ctx context.Context) ([]*models.Publication, error)
	Get(ctx context.Context, id string) (*models.Publication, error)
	Create(ctx context.Context, author, title, content string) (*models.Publication, error)
	Update(ctx context.Context, id, title, content string) (*models.Publication, error)
	Delete(ctx context.Context, id string) error
	Trending(ctx context.Context) ([]*models.Publication, error)
}

// CommentService defines the interface for comment operations inside a
// publication, including the popularity bookkeeping they entail
type CommentService interface {
	List(ctx context.Context, pubID string) ([]models.Comment, error)
	Add(ctx context.Context, pubID, user, content string) (*models.Comment, error)
	Edit(ctx context.Context, pubID string, commentID int, content string) (*models.Comment, error)
	Delete(ctx context.Context, pubID string, commentID int) (*CommentState, error)
	Like(ctx context.Context, pubID string, commentID int, increment bool) (*CommentState, error)
}

// AuthService defines the interface for registration and token issuance
type AuthService interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// CommentState is the publication-level comment state returned after a
// mutation: the surviving comment list and the adjusted popularity
type CommentState struct {
	Comments   []models.Comment `json:"comentarios"`
	Popularity int              `json:"popularidad"`
}

// Services holds all service interfaces
type Services struct {
	Publication PublicationService
	Comment     CommentService
	Auth        AuthService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Publication: newPublicationService(repos.Publication, log),
		Comment:     newCommentService(repos.Publication, log),
		Auth:        newAuthService(repos.User, &cfg.Auth, log),
	}
}
