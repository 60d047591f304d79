// Package history keeps diagnosis results and prepares them for
// display: newest first, tolerant of records whose timestamp cannot be
// parsed, truncated to a display window.
package history

import (
	"context"
	"sort"
	"time"
)

// TimeLayout is the fixed wire format for record timestamps
// (UTC ISO-8601 with milliseconds and a literal Z).
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Record is one stored diagnosis outcome. The backend owns it; callers
// get read-only copies.
type Record struct {
	ID          string  `json:"id"`
	UserID      string  `json:"-"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	Probability float64 `json:"probability"`
	Feedback    string  `json:"feedback,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

type Store interface {
	Insert(ctx context.Context, rec Record) error
	ListByUser(ctx context.Context, userID string) ([]Record, error)
}

// Reconcile orders records by CreatedAt descending and truncates to
// limit. A CreatedAt that fails to parse is treated as the minimum
// timestamp, so malformed records sort after every valid one instead of
// aborting the batch. The sort is stable, limit <= 0 means no
// truncation, and empty input stays empty.
func Reconcile(records []Record, limit int) []Record {
	type keyed struct {
		rec Record
		ts  time.Time
	}
	ks := make([]keyed, 0, len(records))
	for _, r := range records {
		t, err := time.Parse(TimeLayout, r.CreatedAt)
		if err != nil {
			t = time.Time{}
		}
		ks = append(ks, keyed{rec: r, ts: t})
	}
	sort.SliceStable(ks, func(i, j int) bool {
		return ks[i].ts.After(ks[j].ts)
	})

	out := make([]Record, 0, len(ks))
	for _, k := range ks {
		out = append(out, k.rec)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
