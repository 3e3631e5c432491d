package mocks

import (
	"context"
	"fmt"

	"github.com/publications-api/internal/models"
)

// MockPublicationRepository is an in-memory implementation of
// repository.PublicationRepository. IDs are assigned sequentially so
// tests stay deterministic. Reads hand out copies, like a real store.
type MockPublicationRepository struct {
	Pubs map[string]*models.Publication

	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error

	UpdateCommentsCalls int
	nextID              int
}

func NewMockPublicationRepository() *MockPublicationRepository {
	return &MockPublicationRepository{
		Pubs: make(map[string]*models.Publication),
	}
}

func (m *MockPublicationRepository) GetAll(ctx context.Context) ([]*models.Publication, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	var pubs []*models.Publication
	for _, p := range m.Pubs {
		pubs = append(pubs, copyPublication(p))
	}
	return pubs, nil
}

func (m *MockPublicationRepository) GetByID(ctx context.Context, id string) (*models.Publication, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	pub, ok := m.Pubs[id]
	if !ok {
		return nil, nil
	}
	return copyPublication(pub), nil
}

func (m *MockPublicationRepository) Create(ctx context.Context, pub *models.Publication) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	pub.ID = fmt.Sprintf("pub-%d", m.nextID)
	m.Pubs[pub.ID] = copyPublication(pub)
	return nil
}

func (m *MockPublicationRepository) UpdateContent(ctx context.Context, id, title, content string) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if pub, ok := m.Pubs[id]; ok {
		pub.Title = title
		pub.Content = content
	}
	return nil
}

func (m *MockPublicationRepository) UpdateComments(ctx context.Context, id string, comments []models.Comment, popularity int) error {
	m.UpdateCommentsCalls++
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if pub, ok := m.Pubs[id]; ok {
		pub.Comments = append([]models.Comment(nil), comments...)
		pub.Popularity = popularity
	}
	return nil
}

func (m *MockPublicationRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Pubs, id)
	return nil
}

func (m *MockPublicationRepository) TopByPopularity(ctx context.Context, limit int) ([]*models.Publication, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	all, _ := m.GetAll(ctx)
	// Insertion sort by popularity descending; ties keep map order,
	// which is deliberately unstable
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j].Popularity > all[j-1].Popularity; j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func copyPublication(p *models.Publication) *models.Publication {
	cp := *p
	cp.Comments = append([]models.Comment(nil), p.Comments...)
	return &cp
}

// MockUserRepository is an in-memory implementation of
// repository.UserRepository keyed by username
type MockUserRepository struct {
	Users map[string]*models.User

	CreateErr error
	GetErr    error

	nextID int
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	user.ID = fmt.Sprintf("user-%d", m.nextID)
	stored := *user
	m.Users[user.Username] = &stored
	return nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	user, ok := m.Users[username]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	if m.GetErr != nil {
		return false, m.GetErr
	}
	_, ok := m.Users[username]
	return ok, nil
}
