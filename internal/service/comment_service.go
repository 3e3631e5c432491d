package service

import (
	"context"
	"time"

	"github.com/publications-api/internal/models"
	"github.com/publications-api/internal/repository"
	"github.com/publications-api/internal/validation"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService.
// Every mutation re-reads the publication, adjusts the comment list and
// the popularity counter together, and writes both back in one update.
type commentService struct {
	pubs repository.PublicationRepository
	log  zerolog.Logger
}

func newCommentService(pubs repository.PublicationRepository, log zerolog.Logger) CommentService {
	return &commentService{
		pubs: pubs,
		log:  log.With().Str("service", "comment").Logger(),
	}
}

// List returns the comment thread of a publication
func (s *commentService) List(ctx context.Context, pubID string) ([]models.Comment, error) {
	pub, err := s.pubs.GetByID(ctx, pubID)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, ErrPublicationNotFound
	}
	if pub.Comments == nil {
		return []models.Comment{}, nil
	}
	return pub.Comments, nil
}

// Add appends a new comment with the next integer ID and zero likes.
// Popularity is untouched: a fresh comment contributes no likes.
func (s *commentService) Add(ctx context.Context, pubID, user, content string) (*models.Comment, error) {
	if validation.IsBlank(content) {
		return nil, ErrEmptyContent
	}
	if validation.IsProhibited(content) {
		return nil, ErrContentRejected
	}

	pub, err := s.pubs.GetByID(ctx, pubID)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, ErrPublicationNotFound
	}

	comment := models.Comment{
		ID:       models.NextCommentID(pub.Comments),
		User:     user,
		Content:  content,
		PostedAt: time.Now().UTC(),
		Likes:    0,
	}
	comments := append(pub.Comments, comment)

	if err := s.pubs.UpdateComments(ctx, pubID, comments, pub.Popularity); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("publication_id", pubID).
		Int("comment_id", comment.ID).
		Str("user", user).
		Msg("Comment added")

	return &comment, nil
}

// Edit replaces the content of an existing comment and stamps the
// modification time. ID and likes are preserved exactly.
func (s *commentService) Edit(ctx context.Context, pubID string, commentID int, content string) (*models.Comment, error) {
	if validation.IsBlank(content) {
		return nil, ErrEmptyContent
	}
	if validation.IsProhibited(content) {
		return nil, ErrContentRejected
	}

	pub, err := s.pubs.GetByID(ctx, pubID)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, ErrPublicationNotFound
	}

	idx := findComment(pub.Comments, commentID)
	if idx == -1 {
		return nil, ErrCommentNotFound
	}

	now := time.Now().UTC()
	pub.Comments[idx].Content = content
	pub.Comments[idx].EditedAt = &now

	if err := s.pubs.UpdateComments(ctx, pubID, pub.Comments, pub.Popularity); err != nil {
		return nil, err
	}

	updated := pub.Comments[idx]
	return &updated, nil
}

// Delete removes a comment and subtracts its likes from the publication
// popularity. The subtraction is not clamped: the invariant that
// popularity equals the sum of comment likes keeps it non-negative.
func (s *commentService) Delete(ctx context.Context, pubID string, commentID int) (*CommentState, error) {
	pub, err := s.pubs.GetByID(ctx, pubID)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, ErrPublicationNotFound
	}

	idx := findComment(pub.Comments, commentID)
	if idx == -1 {
		return nil, ErrCommentNotFound
	}

	popularity := pub.Popularity - pub.Comments[idx].Likes
	remaining := make([]models.Comment, 0, len(pub.Comments)-1)
	for _, c := range pub.Comments {
		if c.ID != commentID {
			remaining = append(remaining, c)
		}
	}

	if err := s.pubs.UpdateComments(ctx, pubID, remaining, popularity); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("publication_id", pubID).
		Int("comment_id", commentID).
		Int("popularity", popularity).
		Msg("Comment deleted")

	return &CommentState{Comments: remaining, Popularity: popularity}, nil
}

// Like adjusts a comment's like counter by one in either direction and
// moves the publication popularity in lockstep. An unlike on a comment
// at zero likes is rejected rather than clamped; the aggregate counter
// is floored at zero on the way down.
func (s *commentService) Like(ctx context.Context, pubID string, commentID int, increment bool) (*CommentState, error) {
	pub, err := s.pubs.GetByID(ctx, pubID)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, ErrPublicationNotFound
	}

	idx := findComment(pub.Comments, commentID)
	if idx == -1 {
		return nil, ErrCommentNotFound
	}

	if !increment && pub.Comments[idx].Likes == 0 {
		return nil, ErrLikeUnderflow
	}

	popularity := pub.Popularity
	if increment {
		pub.Comments[idx].Likes++
		popularity++
	} else {
		pub.Comments[idx].Likes--
		if popularity > 0 {
			popularity--
		}
	}

	if err := s.pubs.UpdateComments(ctx, pubID, pub.Comments, popularity); err != nil {
		return nil, err
	}

	return &CommentState{Comments: pub.Comments, Popularity: popularity}, nil
}

// findComment returns the index of the comment with the given ID, or -1
func findComment(comments []models.Comment, id int) int {
	for i, c := range comments {
		if c.ID == id {
			return i
		}
	}
	return -1
}
