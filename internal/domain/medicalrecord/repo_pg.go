package medicalrecord

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicore/clinicore/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *repoPG) CreateRecord(ctx context.Context, rec *Record) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medical_records (patient_id, image_url, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		rec.PatientID, rec.ImageURL, rec.Description).Scan(&rec.ID, &rec.CreatedAt)
}

func (r *repoPG) GrantAccess(ctx context.Context, recordID, doctorID int64) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO medical_record_access (record_id, doctor_id)
		VALUES ($1, $2)
		ON CONFLICT (record_id, doctor_id) DO NOTHING`, recordID, doctorID)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*RecordView, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, image_url, description, created_at
		FROM medical_records
		WHERE patient_id = $1
		ORDER BY id`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []*RecordView
	for rows.Next() {
		var v RecordView
		var rec Record
		if err := rows.Scan(&v.ID, &v.ImageURL, &v.Description, &rec.CreatedAt); err != nil {
			return nil, err
		}
		v.CreatedAt = rec.CreatedAt.Format(timestampLayout)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, v := range views {
		if v.Doctors, err = r.accessDoctors(ctx, v.ID); err != nil {
			return nil, err
		}
		if v.Diagnoses, err = r.recordDiagnoses(ctx, v.ID); err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (r *repoPG) accessDoctors(ctx context.Context, recordID int64) ([]DoctorRef, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT d.id, d.name
		FROM medical_record_access a
		JOIN doctors d ON d.id = a.doctor_id
		WHERE a.record_id = $1
		ORDER BY d.id`, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doctors := []DoctorRef{}
	for rows.Next() {
		var d DoctorRef
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

func (r *repoPG) recordDiagnoses(ctx context.Context, recordID int64) ([]DiagnosisView, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT dg.id, dg.diagnosis, d.id, d.name, dg.created_at
		FROM diagnoses dg
		JOIN doctors d ON d.id = dg.doctor_id
		WHERE dg.record_id = $1
		ORDER BY dg.id`, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	diagnoses := []DiagnosisView{}
	for rows.Next() {
		var dv DiagnosisView
		var dg Diagnosis
		if err := rows.Scan(&dv.ID, &dv.Diagnosis, &dv.Doctor.ID, &dv.Doctor.Name, &dg.CreatedAt); err != nil {
			return nil, err
		}
		dv.CreatedAt = dg.CreatedAt.Format(timestampLayout)
		diagnoses = append(diagnoses, dv)
	}
	return diagnoses, rows.Err()
}

func (r *repoPG) CreateDiagnosis(ctx context.Context, d *Diagnosis) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO diagnoses (record_id, doctor_id, diagnosis)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		d.RecordID, d.DoctorID, d.Diagnosis).Scan(&d.ID, &d.CreatedAt)
}
