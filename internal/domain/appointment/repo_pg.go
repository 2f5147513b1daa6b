package appointment

import (
	"context"
	"errors"
	"time"

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

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, date, time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		a.PatientID, a.DoctorID, a.Date, a.Time, a.Status).Scan(&a.ID)
	if isUniqueViolation(err) {
		// The slot unique index fired: another booking won the race between
		// the SlotTaken check and this insert.
		return ErrSlotUnavailable
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	var a Appointment
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, patient_id, doctor_id, date, time, status
		FROM appointments WHERE id = $1`, id).
		Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.Time, &a.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*PatientView, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT a.id, d.name, d.specialty, a.date, a.time, a.status
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		WHERE a.patient_id = $1
		ORDER BY a.date, a.time`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []*PatientView
	for rows.Next() {
		var v PatientView
		var date time.Time
		if err := rows.Scan(&v.ID, &v.Doctor.Name, &v.Doctor.Specialty, &date, &v.Time, &v.Status); err != nil {
			return nil, err
		}
		v.Date = date.Format(dateLayout)
		views = append(views, &v)
	}
	return views, rows.Err()
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID int64) ([]*DoctorView, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT a.id, u.id, u.username, a.date, a.time, a.status
		FROM appointments a
		JOIN users u ON u.id = a.patient_id
		WHERE a.doctor_id = $1
		ORDER BY a.date, a.time`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []*DoctorView
	for rows.Next() {
		var v DoctorView
		var date time.Time
		if err := rows.Scan(&v.ID, &v.Patient.ID, &v.Patient.Name, &date, &v.Time, &v.Status); err != nil {
			return nil, err
		}
		v.Date = date.Format(dateLayout)
		views = append(views, &v)
	}
	return views, rows.Err()
}

func (r *repoPG) SlotTaken(ctx context.Context, doctorID int64, date time.Time, clock string) (bool, error) {
	var taken bool
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE doctor_id = $1 AND date = $2 AND time = $3 AND status <> $4
		)`, doctorID, date, clock, StatusCancelled).Scan(&taken)
	return taken, err
}
