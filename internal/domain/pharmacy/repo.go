package pharmacy

import "context"

// Repository persists pharmacy directory entries. GetByID returns (nil, nil)
// when no row matches. There is no delete: pharmacies only leave the
// directory through manual intervention.
type Repository interface {
	Create(ctx context.Context, p *Pharmacy) error
	List(ctx context.Context) ([]*Pharmacy, error)
	GetByID(ctx context.Context, id int64) (*Pharmacy, error)
	Update(ctx context.Context, p *Pharmacy) error
}
