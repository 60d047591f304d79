package http

import (
	"encoding/json"
	"net/http"

	"github.com/7innovations/fixu/internal/auth"
	"github.com/7innovations/fixu/internal/diagnose"
	"github.com/7innovations/fixu/pkg/questionbank"
)

// PredictHandler serves one category's prediction route. The category
// is fixed by the route, never taken from the body, so submissions can
// not be cross-routed.
func PredictHandler(svc *diagnose.Service, cat questionbank.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub questionbank.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if sub.Category != "" && sub.Category != cat {
			http.Error(w, "submission category does not match route", http.StatusBadRequest)
			return
		}
		sub.Category = cat

		rec, err := svc.Predict(r.Context(), auth.SubjectFromContext(r.Context()), sub)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, rec)
	}
}
