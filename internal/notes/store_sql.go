package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Insert(ctx context.Context, n Note) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (id,user_id,title,content,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		n.ID, n.UserID, n.Title, n.Content, n.CreatedAt, nullable(n.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (Note, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,user_id,title,content,created_at,updated_at FROM notes WHERE id=$1`, id)
	return scanNote(row)
}

func (s *SQLStore) ListByUser(ctx context.Context, userID string) ([]Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,user_id,title,content,created_at,updated_at FROM notes WHERE user_id=$1`, userID)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var out []Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *SQLStore) Update(ctx context.Context, n Note) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE notes SET title=$1, content=$2, updated_at=$3 WHERE id=$4`,
		n.Title, n.Content, nullable(n.UpdatedAt), n.ID)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (Note, error) {
	var n Note
	var updated sql.NullString
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Note{}, ErrNotFound
		}
		return Note{}, fmt.Errorf("scan note: %w", err)
	}
	n.UpdatedAt = updated.String
	return n, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
