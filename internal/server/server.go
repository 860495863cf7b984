// Package server exposes the card generator over HTTP: a page with a seed
// box and a PNG endpoint, the web counterpart of the generate command.
package server

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"

	"github.com/bingoland/bingosmith/internal/card"
	"github.com/bingoland/bingosmith/internal/wordlist"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Config is the server configuration, read from the environment.
type Config struct {
	Addr string `env:"BINGOSMITH_ADDR" envDefault:":8080"`
}

// FromEnv loads the server configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Server serves bingo cards rendered from one generator and word list.
type Server struct {
	gen  *card.Generator
	list *wordlist.List
}

// New creates a Server.
func New(gen *card.Generator, list *wordlist.List) *Server {
	return &Server{gen: gen, list: list}
}

// Routes configures all routes and returns the handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.handleIndex)
	r.Get("/card.png", s.handleCard)
	r.Get("/healthz", s.handleHealth)

	return r
}

// handleIndex serves the generator page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Words    int
		Checksum string
	}{
		Words:    len(s.list.Words),
		Checksum: s.list.Checksum,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("Error rendering index: %v", err)
	}
}

// handleCard renders a card from the query parameters and streams it as a
// PNG. Validation failures map to 400; anything else is a 500.
func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	rows := parseIntParam(r, "rows", 5)
	cols := parseIntParam(r, "cols", 5)
	seed := r.URL.Query().Get("seed")

	res, err := s.gen.Generate(card.Request{
		Words:    s.list.Words,
		Rows:     rows,
		Cols:     cols,
		Seed:     seed,
		Checksum: s.list.Checksum,
	})
	if err != nil {
		if errors.Is(err, card.ErrInvalidDimensions) || errors.Is(err, card.ErrInsufficientWords) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error generating card: %v", err)
		http.Error(w, "error generating card", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, res.Image); err != nil {
		log.Printf("Error encoding card: %v", err)
		http.Error(w, "error encoding card", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}
