package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	api "github.com/7innovations/fixu/internal/api/http"
	"github.com/7innovations/fixu/internal/auth"
	"github.com/7innovations/fixu/internal/config"
	"github.com/7innovations/fixu/internal/db"
	"github.com/7innovations/fixu/internal/diagnose"
	"github.com/7innovations/fixu/internal/history"
	"github.com/7innovations/fixu/internal/notes"
	"github.com/7innovations/fixu/internal/question"
	"github.com/7innovations/fixu/internal/quotes"
	"github.com/7innovations/fixu/pkg/questionbank"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	// Question bank seeding is idempotent; a failed pass retries on the
	// next start, so it only warns here.
	if err := question.SeedIfEmpty(ctx, question.NewSQLStore(dbh)); err != nil {
		log.Printf("question seeding skipped: %v", err)
	}

	// --- Services ---
	authSvc := auth.NewService(auth.NewSQLStore(dbh), cfg.AuthSecret, cfg.TokenTTL)
	results := history.NewSQLStore(dbh)
	diagSvc := diagnose.NewService(results)
	histSvc := history.NewService(results, cfg.HistoryLimit)
	noteSvc := notes.NewService(notes.NewSQLStore(dbh))

	quoteProvider, err := quotes.NewProvider(cfg.QuotesDir)
	if err != nil {
		log.Fatalf("quotes dir: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/register", auth.RegisterHandler(authSvc))
	r.Post("/auth/login", auth.LoginHandler(authSvc))

	// Protected API (JWT -> subject in context)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.Post("/predict/professional/result", api.PredictHandler(diagSvc, questionbank.CategoryProfessional))
		pr.Post("/predict/student/result", api.PredictHandler(diagSvc, questionbank.CategoryStudent))

		pr.Get("/history", api.HistoryHandler(histSvc))

		pr.Get("/notes", api.ListNotesHandler(noteSvc))
		pr.Post("/notes/add", api.AddNoteHandler(noteSvc))
		pr.Patch("/notes/update/{id}", api.PatchNoteHandler(noteSvc))
		pr.Delete("/notes/{id}", api.DeleteNoteHandler(noteSvc))

		pr.Get("/quotes/quotes", api.QuoteHandler(quoteProvider, cfg.PublicURL))
		pr.Get("/quotes/assets/{name}", api.QuoteAssetHandler(quoteProvider))
	})

	log.Printf("fixud listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
