package pharmacy

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

func (r *repoPG) Create(ctx context.Context, p *Pharmacy) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO pharmacies (name, address, phone_number)
		VALUES ($1, $2, $3)
		RETURNING id`,
		p.Name, p.Address, p.PhoneNumber).Scan(&p.ID)
}

func (r *repoPG) List(ctx context.Context) ([]*Pharmacy, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, name, address, phone_number FROM pharmacies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pharmacies []*Pharmacy
	for rows.Next() {
		var p Pharmacy
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.PhoneNumber); err != nil {
			return nil, err
		}
		pharmacies = append(pharmacies, &p)
	}
	return pharmacies, rows.Err()
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Pharmacy, error) {
	var p Pharmacy
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, name, address, phone_number FROM pharmacies WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Address, &p.PhoneNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) Update(ctx context.Context, p *Pharmacy) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE pharmacies SET name = $2, address = $3, phone_number = $4
		WHERE id = $1`,
		p.ID, p.Name, p.Address, p.PhoneNumber)
	return err
}
