package main

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Simplici0/housecost/internal/config"
	"github.com/Simplici0/housecost/internal/format"
	"github.com/Simplici0/housecost/internal/kvstore"
	"github.com/Simplici0/housecost/internal/savedconfig"
	"github.com/Simplici0/housecost/internal/seed"
)

//go:embed web/templates/*.html
var templateFS embed.FS

type server struct {
	store *savedconfig.Store
}

type baseViewData struct {
	ErrorMessage   string
	SuccessMessage string
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	kv, closer, err := kvstore.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer closer.Close()

	store := savedconfig.New(kv)
	stats, err := seed.Run(ctx, kv, store, seed.Config{Example: cfg.IsDev()})
	if err != nil {
		log.Fatalf("failed to seed saved configurations: %v", err)
	}
	if stats.Inserts > 0 {
		log.Printf("seed: %d inserts", stats.Inserts)
	}

	srv := &server{store: store}
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Post("/estimate", s.handleEstimate)
	r.Post("/api/estimate", s.handleAPIEstimate)
	r.Get("/api/saved", s.handleAPISaved)
	r.Post("/saved", s.handleSave)
	r.Get("/saved/{id}", s.handleSavedOpen)
	r.Post("/saved/{id}/delete", s.handleSavedDelete)
	r.Get("/export/{format}", s.handleExport)
	r.Get("/healthz", s.handleHealthz)
	return r
}

var templateFuncs = template.FuncMap{
	"currency": format.Currency,
	"area":     format.Area,
	"percent":  format.Percent,
}

func (s *server) renderTemplate(w http.ResponseWriter, status int, page string, data any) {
	templates, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFS,
		"web/templates/layout.html",
		"web/templates/"+page,
	)
	if err != nil {
		log.Printf("parse template %s: %v", page, err)
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		log.Printf("render template %s: %v", page, err)
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
