package service_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/publications-api/internal/config"
	"github.com/publications-api/internal/mocks"
	"github.com/publications-api/internal/models"
	"github.com/publications-api/internal/repository"
	"github.com/publications-api/internal/service"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func newTestServices(pubRepo *mocks.MockPublicationRepository, userRepo *mocks.MockUserRepository) *service.Services {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret",
			TokenTTL:   600 * time.Second,
			BcryptCost: bcrypt.MinCost,
		},
	}
	repos := &repository.Repositories{Publication: pubRepo, User: userRepo}
	return service.NewServices(repos, cfg, zerolog.Nop())
}

func TestPublicationCreate(t *testing.T) {
	repo := mocks.NewMockPublicationRepository()
	svc := newTestServices(repo, mocks.NewMockUserRepository())

	pub, err := svc.Publication.Create(context.Background(), "alice", "T", "C")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if pub.ID == "" {
		t.Error("Create must assign an ID")
	}
	if pub.Author != "alice" || pub.Title != "T" || pub.Content != "C" {
		t.Errorf("Unexpected fields: %+v", pub)
	}
	if pub.Popularity != 0 {
		t.Errorf("New publication must start at popularity 0, got %d", pub.Popularity)
	}
	if pub.Comments == nil || len(pub.Comments) != 0 {
		t.Errorf("New publication must have an empty comment list, got %+v", pub.Comments)
	}
	if pub.DatePub.IsZero() {
		t.Error("Create must stamp the publication date")
	}
}

func TestPublicationGet(t *testing.T) {
	repo := mocks.NewMockPublicationRepository()
	svc := newTestServices(repo, mocks.NewMockUserRepository())
	ctx := context.Background()

	created, err := svc.Publication.Create(ctx, "alice", "T", "C")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Fetching twice without mutation returns identical data
	first, err := svc.Publication.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	second, err := svc.Publication.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Second Get failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Repeated reads must be identical: %+v vs %+v", first, second)
	}

	if _, err := svc.Publication.Get(ctx, "missing"); !errors.Is(err, service.ErrPublicationNotFound) {
		t.Errorf("Expected ErrPublicationNotFound, got %v", err)
	}
}

func TestPublicationList(t *testing.T) {
	repo := mocks.NewMockPublicationRepository()
	svc := newTestServices(repo, mocks.NewMockUserRepository())
	ctx := context.Background()

	// Empty store is a valid, non-error result
	pubs, err := svc.Publication.List(ctx)
	if err != nil {
		t.Fatalf("List on empty store failed: %v", err)
	}
	if len(pubs) != 0 {
		t.Errorf("Expected no publications, got %d", len(pubs))
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.Publication.Create(ctx, "alice", fmt.Sprintf("T%d", i), "C"); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	pubs, err = svc.Publication.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(pubs) != 3 {
		t.Errorf("Expected 3 publications, got %d", len(pubs))
	}
}

func TestPublicationUpdate(t *testing.T) {
	repo := mocks.NewMockPublicationRepository()
	seedPublication(repo, "pub-1", 7, models.Comment{ID: 1, User: "bob", Content: "hi", Likes: 7})
	original := *repo.Pubs["pub-1"]
	svc := newTestServices(repo, mocks.NewMockUserRepository())

	updated, err := svc.Publication.Update(context.Background(), "pub-1", "New title", "New content")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != "New title" || updated.Content != "New content" {
		t.Errorf("Title/content not updated: %+v", updated)
	}
	if updated.Author != original.Author {
		t.Error("Update must preserve the author")
	}
	if !updated.DatePub.Equal(original.DatePub) {
		t.Error("Update must preserve the publication date")
	}
	if updated.Popularity != 7 || len(updated.Comments) != 1 {
		t.Errorf("Update must preserve comments and popularity, got %+v", updated)
	}

	if _, err := svc.Publication.Update(context.Background(), "missing", "T", "C"); !errors.Is(err, service.ErrPublicationNotFound) {
		t.Errorf("Expected ErrPublicationNotFound, got %v", err)
	}
}

func TestPublicationDelete(t *testing.T) {
	repo := mocks.NewMockPublicationRepository()
	seedPublication(repo, "pub-1", 0, models.Comment{ID: 1, User: "bob", Content: "hi"})
	svc := newTestServices(repo, mocks.NewMockUserRepository())
	ctx := context.Background()

	if err := svc.Publication.Delete(ctx, "pub-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := repo.Pubs["pub-1"]; ok {
		t.Error("Publication should be removed together with its comments")
	}

	if err := svc.Publication.Delete(ctx, "pub-1"); !errors.Is(err, service.ErrPublicationNotFound) {
		t.Errorf("Expected ErrPublicationNotFound, got %v", err)
	}
}

func TestPublicationTrending(t *testing.T) {
	repo := mocks.NewMockPublicationRepository()
	svc := newTestServices(repo, mocks.NewMockUserRepository())
	ctx := context.Background()

	// No publications at all is an explicit error, not an empty list
	if _, err := svc.Publication.Trending(ctx); !errors.Is(err, service.ErrNoPublications) {
		t.Fatalf("Expected ErrNoPublications, got %v", err)
	}

	for i := 0; i < 7; i++ {
		seedPublication(repo, fmt.Sprintf("pub-%d", i), i*10)
	}

	pubs, err := svc.Publication.Trending(ctx)
	if err != nil {
		t.Fatalf("Trending failed: %v", err)
	}
	if len(pubs) != 5 {
		t.Fatalf("Expected top 5, got %d", len(pubs))
	}
	for i := 1; i < len(pubs); i++ {
		if pubs[i].Popularity > pubs[i-1].Popularity {
			t.Errorf("Trending must be ordered by popularity descending: %d before %d",
				pubs[i-1].Popularity, pubs[i].Popularity)
		}
	}
	if pubs[0].Popularity != 60 {
		t.Errorf("Expected most popular first (60), got %d", pubs[0].Popularity)
	}
}
