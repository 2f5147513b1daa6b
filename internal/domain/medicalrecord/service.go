package medicalrecord

import (
	"context"
	"errors"
)

var ErrMissingFields = errors.New("Missing required fields")

// TxFunc runs fn atomically; production wiring is db.RunInTx over the pgx pool.
type TxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

type Service struct {
	repo Repository
	tx   TxFunc
}

func NewService(repo Repository, tx TxFunc) *Service {
	return &Service{repo: repo, tx: tx}
}

// Add stores a medical record and grants access to each listed doctor. The
// record insert and all grants commit together or not at all.
func (s *Service) Add(ctx context.Context, patientID int64, imageURL, description string, doctorIDs []int64) (int64, error) {
	if patientID == 0 || imageURL == "" {
		return 0, ErrMissingFields
	}

	rec := &Record{PatientID: patientID, ImageURL: imageURL, Description: description}
	err := s.tx(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateRecord(ctx, rec); err != nil {
			return err
		}
		for _, doctorID := range doctorIDs {
			if err := s.repo.GrantAccess(ctx, rec.ID, doctorID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*RecordView, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

// AddDiagnosis attaches a diagnosis to a record. The writing doctor does not
// have to hold an access grant on the record.
func (s *Service) AddDiagnosis(ctx context.Context, recordID, doctorID int64, text string) (int64, error) {
	if recordID == 0 || doctorID == 0 || text == "" {
		return 0, ErrMissingFields
	}
	d := &Diagnosis{RecordID: recordID, DoctorID: doctorID, Diagnosis: text}
	if err := s.repo.CreateDiagnosis(ctx, d); err != nil {
		return 0, err
	}
	return d.ID, nil
}
