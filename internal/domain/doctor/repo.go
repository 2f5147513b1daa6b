package doctor

import "context"

// Repository persists doctors and their weekly schedules. GetByID and
// GetByEmail return (nil, nil) when no row matches.
type Repository interface {
	List(ctx context.Context, search, specialty string) ([]*Doctor, error)
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	GetByEmail(ctx context.Context, email string) (*Doctor, error)
	ListSchedules(ctx context.Context, doctorID int64) ([]*Schedule, error)
	DeleteSchedules(ctx context.Context, doctorID int64) error
	CreateSchedule(ctx context.Context, s *Schedule) error
}
