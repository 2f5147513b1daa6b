package doctor

import (
	"context"
	"errors"

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

const docCols = `id, name, specialty, location, phone, email, bio, image_url, password_hash`

func (r *repoPG) scanRow(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.Location, &d.Phone,
		&d.Email, &d.Bio, &d.ImageURL, &d.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repoPG) List(ctx context.Context, search, specialty string) ([]*Doctor, error) {
	query := `SELECT ` + docCols + ` FROM doctors WHERE 1=1`
	args := []interface{}{}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += ` AND (name ILIKE $1 OR specialty ILIKE $1)`
	}
	if specialty != "" {
		args = append(args, specialty)
		if search != "" {
			query += ` AND specialty = $2`
		} else {
			query += ` AND specialty = $1`
		}
	}
	query += ` ORDER BY id`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doctors []*Doctor
	for rows.Next() {
		d, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	return r.scanRow(r.conn(ctx).QueryRow(ctx,
		`SELECT `+docCols+` FROM doctors WHERE id = $1`, id))
}

func (r *repoPG) GetByEmail(ctx context.Context, email string) (*Doctor, error) {
	return r.scanRow(r.conn(ctx).QueryRow(ctx,
		`SELECT `+docCols+` FROM doctors WHERE email = $1`, email))
}

func (r *repoPG) ListSchedules(ctx context.Context, doctorID int64) ([]*Schedule, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, doctor_id, day_of_week, start_time, end_time
		FROM doctor_schedules
		WHERE doctor_id = $1
		ORDER BY day_of_week, start_time`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*Schedule
	for rows.Next() {
		var s Schedule
		if err := rows.Scan(&s.ID, &s.DoctorID, &s.DayOfWeek, &s.StartTime, &s.EndTime); err != nil {
			return nil, err
		}
		schedules = append(schedules, &s)
	}
	return schedules, rows.Err()
}

func (r *repoPG) DeleteSchedules(ctx context.Context, doctorID int64) error {
	_, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM doctor_schedules WHERE doctor_id = $1`, doctorID)
	return err
}

func (r *repoPG) CreateSchedule(ctx context.Context, s *Schedule) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO doctor_schedules (doctor_id, day_of_week, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		s.DoctorID, s.DayOfWeek, s.StartTime, s.EndTime).Scan(&s.ID)
}
