package question

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/7innovations/fixu/pkg/questionbank"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) ByCategory(ctx context.Context, cat questionbank.Category) ([]questionbank.Question, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,category,question_text,answer_type,options_json FROM questions WHERE category=$1 ORDER BY id`, string(cat))
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []questionbank.Question
	for rows.Next() {
		var q questionbank.Question
		var category, answerType string
		var optsJSON sql.NullString
		if err := rows.Scan(&q.ID, &category, &q.Text, &answerType, &optsJSON); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Category = questionbank.Category(category)
		q.AnswerType = questionbank.AnswerType(answerType)
		if optsJSON.Valid && optsJSON.String != "" {
			if err := json.Unmarshal([]byte(optsJSON.String), &q.Options); err != nil {
				return nil, fmt.Errorf("decode options for question %d: %w", q.ID, err)
			}
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) CountAll(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

// InsertAll seeds the catalog inside one transaction. The emptiness
// re-check runs under the same transaction so concurrent first launches
// cannot duplicate rows.
func (s *SQLStore) InsertAll(ctx context.Context, qs []questionbank.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n); err != nil {
		return fmt.Errorf("count questions: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, q := range qs {
		var optsJSON any
		if len(q.Options) > 0 {
			buf, err := json.Marshal(q.Options)
			if err != nil {
				return fmt.Errorf("encode options: %w", err)
			}
			optsJSON = string(buf)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO questions (category,question_text,answer_type,options_json) VALUES ($1,$2,$3,$4)`,
			string(q.Category), q.Text, string(q.AnswerType), optsJSON); err != nil {
			return fmt.Errorf("insert question: %w", err)
		}
	}
	return tx.Commit()
}
