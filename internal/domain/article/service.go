package article

import (
	"context"
	"errors"
)

var (
	ErrMissingFields = errors.New("Missing required fields")
	ErrNotFound      = errors.New("Article not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores an article. Title and content are required; the image is
// optional.
func (s *Service) Create(ctx context.Context, imageURL, title, content string) (int64, error) {
	if title == "" || content == "" {
		return 0, ErrMissingFields
	}
	a := &Article{ImageURL: imageURL, Title: title, Content: content}
	if err := s.repo.Create(ctx, a); err != nil {
		return 0, err
	}
	return a.ID, nil
}

func (s *Service) List(ctx context.Context) ([]*Article, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Article, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

// Update applies a partial update: only the fields present in the patch are
// written, everything else keeps its stored value.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrNotFound
	}

	if patch.ImageURL != "" {
		a.ImageURL = patch.ImageURL
	}
	if patch.Title != "" {
		a.Title = patch.Title
	}
	if patch.Content != "" {
		a.Content = patch.Content
	}

	return s.repo.Update(ctx, a)
}
