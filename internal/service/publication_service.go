package service

import (
	"context"
	"time"

	"github.com/publications-api/internal/models"
	"github.com/publications-api/internal/repository"
	"github.com/rs/zerolog"
)

// publicationService is the concrete implementation of PublicationService
type publicationService struct {
	pubs repository.PublicationRepository
	log  zerolog.Logger
}

func newPublicationService(pubs repository.PublicationRepository, log zerolog.Logger) PublicationService {
	return &publicationService{
		pubs: pubs,
		log:  log.With().Str("service", "publication").Logger(),
	}
}

// List returns all publications. An empty result is not an error.
func (s *publicationService) List(ctx context.Context) ([]*models.Publication, error) {
	return s.pubs.GetAll(ctx)
}

// Get returns one publication or ErrPublicationNotFound
func (s *publicationService) Get(ctx context.Context, id string) (*models.Publication, error) {
	pub, err := s.pubs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, ErrPublicationNotFound
	}
	return pub, nil
}

// Create stores a new publication with an empty comment thread and zero
// popularity. The author comes from the authenticated caller.
func (s *publicationService) Create(ctx context.Context, author, title, content string) (*models.Publication, error) {
	pub := &models.Publication{
		Author:     author,
		Title:      title,
		Content:    content,
		DatePub:    time.Now().UTC(),
		Comments:   []models.Comment{},
		Popularity: 0,
	}

	if err := s.pubs.Create(ctx, pub); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("publication_id", pub.ID).
		Str("author", author).
		Msg("Publication created")

	return pub, nil
}

// Update replaces only the title and content. Author, creation date,
// comments and popularity are preserved exactly.
func (s *publicationService) Update(ctx context.Context, id, title, content string) (*models.Publication, error) {
	pub, err := s.pubs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, ErrPublicationNotFound
	}

	if err := s.pubs.UpdateContent(ctx, id, title, content); err != nil {
		return nil, err
	}

	pub.Title = title
	pub.Content = content
	return pub, nil
}

// Delete removes a publication and all its embedded comments
func (s *publicationService) Delete(ctx context.Context, id string) error {
	pub, err := s.pubs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pub == nil {
		return ErrPublicationNotFound
	}

	if err := s.pubs.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("publication_id", id).Msg("Publication deleted")
	return nil
}

// Trending returns up to five publications ordered by popularity
// descending, or ErrNoPublications when none exist
func (s *publicationService) Trending(ctx context.Context) ([]*models.Publication, error) {
	pubs, err := s.pubs.TopByPopularity(ctx, models.TrendingLimit)
	if err != nil {
		return nil, err
	}
	if len(pubs) == 0 {
		return nil, ErrNoPublications
	}
	return pubs, nil
}
