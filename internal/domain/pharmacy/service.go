package pharmacy

import (
	"context"
	"errors"
)

var (
	ErrMissingFields = errors.New("Missing required fields")
	ErrNotFound      = errors.New("Pharmacy not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, name, address, phoneNumber string) (int64, error) {
	if name == "" || address == "" || phoneNumber == "" {
		return 0, ErrMissingFields
	}
	p := &Pharmacy{Name: name, Address: address, PhoneNumber: phoneNumber}
	if err := s.repo.Create(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *Service) List(ctx context.Context) ([]*Pharmacy, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Pharmacy, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Update applies a partial update: only the fields present in the patch are
// written, everything else keeps its stored value.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}

	if patch.Name != "" {
		p.Name = patch.Name
	}
	if patch.Address != "" {
		p.Address = patch.Address
	}
	if patch.PhoneNumber != "" {
		p.PhoneNumber = patch.PhoneNumber
	}

	return s.repo.Update(ctx, p)
}
