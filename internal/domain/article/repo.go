package article

import "context"

// Repository persists mental-health articles. GetByID returns (nil, nil)
// when no row matches. Articles are never deleted through the API.
type Repository interface {
	Create(ctx context.Context, a *Article) error
	List(ctx context.Context) ([]*Article, error)
	GetByID(ctx context.Context, id int64) (*Article, error)
	Update(ctx context.Context, a *Article) error
}
