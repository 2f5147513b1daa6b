package appointment

import (
	"context"
	"time"
)

// Repository persists appointments. GetByID returns (nil, nil) when no row
// matches. The list methods join the patient and doctor tables for the
// nested summaries the API exposes.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	Delete(ctx context.Context, id int64) error
	ListByPatient(ctx context.Context, patientID int64) ([]*PatientView, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*DoctorView, error)
	SlotTaken(ctx context.Context, doctorID int64, date time.Time, clock string) (bool, error)
}

// ParticipantDirectory answers whether the referenced patient and doctor
// exist, so booking can fail with a clean validation error instead of a
// foreign-key violation. Implemented by an adapter over the account and
// doctor repositories.
type ParticipantDirectory interface {
	UserExists(ctx context.Context, id int64) (bool, error)
	DoctorExists(ctx context.Context, id int64) (bool, error)
}
