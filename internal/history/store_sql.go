package history

import (
	"context"
	"database/sql"
	"fmt"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Insert(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results (id,user_id,category,status,probability,feedback,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		rec.ID, rec.UserID, rec.Category, rec.Status, rec.Probability, rec.Feedback, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (s *SQLStore) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,category,status,probability,feedback,created_at FROM results WHERE user_id=$1`, userID)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r := Record{UserID: userID}
		if err := rows.Scan(&r.ID, &r.Category, &r.Status, &r.Probability, &r.Feedback, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
