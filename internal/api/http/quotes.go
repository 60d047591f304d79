package http

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/7innovations/fixu/internal/quotes"
)

// QuoteHandler returns the day's quote image URL.
func QuoteHandler(p *quotes.Provider, publicURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := p.ImageFor(time.Now())
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, map[string]string{
			"image": publicURL + "/quotes/assets/" + name,
		})
	}
}

// QuoteAssetHandler streams a quote image by name.
func QuoteAssetHandler(p *quotes.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := p.Open(chi.URLParam(r, "name"))
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		_, _ = io.Copy(w, f)
	}
}
