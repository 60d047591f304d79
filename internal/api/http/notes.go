package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/7innovations/fixu/internal/auth"
	"github.com/7innovations/fixu/internal/notes"
)

func ListNotesHandler(svc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, err := svc.List(r.Context(), auth.SubjectFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		if ns == nil {
			ns = []notes.Note{}
		}
		writeData(w, http.StatusOK, ns)
	}
}

func AddNoteHandler(svc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		n, err := svc.Add(r.Context(), auth.SubjectFromContext(r.Context()), req.Title, req.Content)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusCreated, n)
	}
}

func PatchNoteHandler(svc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p notes.Patch
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		n, err := svc.Update(r.Context(), auth.SubjectFromContext(r.Context()), chi.URLParam(r, "id"), p)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, n)
	}
}

func DeleteNoteHandler(svc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), auth.SubjectFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "note deleted")
	}
}
