package medicalrecord

import "context"

// Repository persists medical records, their access grants, and diagnoses.
type Repository interface {
	CreateRecord(ctx context.Context, r *Record) error
	GrantAccess(ctx context.Context, recordID, doctorID int64) error
	ListByPatient(ctx context.Context, patientID int64) ([]*RecordView, error)
	CreateDiagnosis(ctx context.Context, d *Diagnosis) error
}
