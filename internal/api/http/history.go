package http

import (
	"net/http"

	"github.com/7innovations/fixu/internal/auth"
	"github.com/7innovations/fixu/internal/history"
)

// HistoryHandler returns the caller's reconciled diagnosis history,
// newest first and capped at the service's display window. An empty
// data array is a valid response; clients render their empty state
// from it.
func HistoryHandler(svc *history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := svc.Recent(r.Context(), auth.SubjectFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		if recs == nil {
			recs = []history.Record{}
		}
		writeData(w, http.StatusOK, recs)
	}
}
