package appointment

import (
	"context"
	"errors"
	"time"
)

var (
	ErrMissingFields   = errors.New("Missing required fields")
	ErrInvalidDateTime = errors.New("Invalid date or time format")
	ErrSlotUnavailable = errors.New("Timeslot not available")
	ErrUnknownPatient  = errors.New("Patient not found")
	ErrUnknownDoctor   = errors.New("Doctor not found")
	ErrNotFound        = errors.New("Appointment not found")
)

type Service struct {
	repo         Repository
	participants ParticipantDirectory
}

func NewService(repo Repository, participants ParticipantDirectory) *Service {
	return &Service{repo: repo, participants: participants}
}

// Create books a pending appointment. The patient and doctor must exist and
// the doctor must not already hold a non-cancelled appointment on the same
// date and clock time.
func (s *Service) Create(ctx context.Context, patientID, doctorID int64, dateStr, timeStr string) (int64, error) {
	if patientID == 0 || doctorID == 0 || dateStr == "" || timeStr == "" {
		return 0, ErrMissingFields
	}

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return 0, ErrInvalidDateTime
	}
	if _, err := time.Parse("15:04", timeStr); err != nil {
		return 0, ErrInvalidDateTime
	}

	exists, err := s.participants.UserExists(ctx, patientID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrUnknownPatient
	}
	exists, err = s.participants.DoctorExists(ctx, doctorID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrUnknownDoctor
	}

	taken, err := s.repo.SlotTaken(ctx, doctorID, date, timeStr)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrSlotUnavailable
	}

	a := &Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Time:      timeStr,
		Status:    StatusPending,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return 0, err
	}
	return a.ID, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*PatientView, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int64) ([]*DoctorView, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

// Cancel hard-deletes the appointment. No audit trail is kept.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
