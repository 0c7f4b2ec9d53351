package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type AnalyticsRepository interface {
	Increment(ctx context.Context, scope, key string) error
	Get(ctx context.Context, scope, key string) (int64, error)
	Scope(ctx context.Context, scope string) (map[string]int64, error)
}

type analyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) Increment(ctx context.Context, scope, key string) error {
	query := `
		INSERT INTO analytics_counters (scope, counter_key, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (scope, counter_key) DO UPDATE
		SET count = analytics_counters.count + 1`

	_, err := r.db.ExecContext(ctx, query, scope, key)
	return err
}

func (r *analyticsRepository) Get(ctx context.Context, scope, key string) (int64, error) {
	var count int64
	query := `SELECT COALESCE(SUM(count), 0) FROM analytics_counters WHERE scope = $1 AND counter_key = $2`
	err := r.db.GetContext(ctx, &count, query, scope, key)
	return count, err
}

func (r *analyticsRepository) Scope(ctx context.Context, scope string) (map[string]int64, error) {
	rows, err := r.db.QueryxContext(ctx, `SELECT counter_key, count FROM analytics_counters WHERE scope = $1`, scope)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counters := make(map[string]int64)
	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		counters[key] = count
	}
	return counters, rows.Err()
}
