package article

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

func (r *repoPG) Create(ctx context.Context, a *Article) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO mental_health_articles (image_url, title, content)
		VALUES ($1, $2, $3)
		RETURNING id`,
		a.ImageURL, a.Title, a.Content).Scan(&a.ID)
}

func (r *repoPG) List(ctx context.Context) ([]*Article, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, image_url, title, content FROM mental_health_articles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*Article
	for rows.Next() {
		var a Article
		if err := rows.Scan(&a.ID, &a.ImageURL, &a.Title, &a.Content); err != nil {
			return nil, err
		}
		articles = append(articles, &a)
	}
	return articles, rows.Err()
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Article, error) {
	var a Article
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, image_url, title, content FROM mental_health_articles WHERE id = $1`, id).
		Scan(&a.ID, &a.ImageURL, &a.Title, &a.Content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repoPG) Update(ctx context.Context, a *Article) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE mental_health_articles SET image_url = $2, title = $3, content = $4
		WHERE id = $1`,
		a.ID, a.ImageURL, a.Title, a.Content)
	return err
}
