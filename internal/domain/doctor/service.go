package doctor

import (
	"context"
	"errors"
	"sort"
)

var (
	ErrNotFound            = errors.New("Doctor not found")
	ErrInvalidScheduleData = errors.New("Invalid schedule data")
	ErrInvalidScheduleItem = errors.New("Invalid schedule item")
	ErrInvalidTimeFormat   = errors.New("Invalid time format")
)

// TxFunc runs fn atomically; production wiring is db.RunInTx over the pgx pool.
type TxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

type Service struct {
	repo Repository
	tx   TxFunc
}

func NewService(repo Repository, tx TxFunc) *Service {
	return &Service{repo: repo, tx: tx}
}

// Profile is a doctor plus the timeslots derived from their schedule.
type Profile struct {
	*Doctor
	Timeslots []Timeslot `json:"timeslots"`
}

func (s *Service) List(ctx context.Context, search, specialty string) ([]*Doctor, error) {
	return s.repo.List(ctx, search, specialty)
}

func (s *Service) Get(ctx context.Context, id int64) (*Profile, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	schedules, err := s.repo.ListSchedules(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Profile{Doctor: d, Timeslots: Timeslots(schedules)}, nil
}

func (s *Service) GetSchedule(ctx context.Context, doctorID int64) ([]*Schedule, error) {
	return s.repo.ListSchedules(ctx, doctorID)
}

// ReplaceSchedule swaps a doctor's entire weekly schedule for the supplied
// set. Every entry is validated before anything is touched, and the
// delete-all plus inserts run in one transaction, so a bad entry can never
// leave a half-replaced schedule behind.
func (s *Service) ReplaceSchedule(ctx context.Context, doctorID int64, entries map[string]ScheduleEntry) error {
	if len(entries) == 0 {
		return ErrInvalidScheduleData
	}
	rows, err := normalizeEntries(doctorID, entries)
	if err != nil {
		return err
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].DayOfWeek < rows[j].DayOfWeek })

	return s.tx(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteSchedules(ctx, doctorID); err != nil {
			return err
		}
		for _, row := range rows {
			if err := s.repo.CreateSchedule(ctx, row); err != nil {
				return err
			}
		}
		return nil
	})
}

// CredentialByEmail exposes doctor login credentials to the account domain.
func (s *Service) CredentialByEmail(ctx context.Context, email string) (*Doctor, error) {
	return s.repo.GetByEmail(ctx, email)
}
