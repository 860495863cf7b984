package server

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bingoland/bingosmith/internal/card"
	"github.com/bingoland/bingosmith/internal/wordlist"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	gen, err := card.NewGenerator(card.Options{})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return New(gen, wordlist.Default()).Routes()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCardEndpoint(t *testing.T) {
	h := testHandler(t)

	rec := get(t, h, "/card.png?seed=42")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", got)
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1000 || b.Dy() != 1000 {
		t.Errorf("image is %dx%d, want 1000x1000 for the default 5x5 card", b.Dx(), b.Dy())
	}
}

func TestCardEndpointDeterministic(t *testing.T) {
	h := testHandler(t)

	a := get(t, h, "/card.png?seed=retro&rows=3&cols=3")
	b := get(t, h, "/card.png?seed=retro&rows=3&cols=3")
	if a.Code != http.StatusOK || b.Code != http.StatusOK {
		t.Fatalf("status = %d and %d, want %d", a.Code, b.Code, http.StatusOK)
	}
	if !bytes.Equal(a.Body.Bytes(), b.Body.Bytes()) {
		t.Fatal("same seed produced different card bytes")
	}
}

func TestCardEndpointShape(t *testing.T) {
	h := testHandler(t)

	rec := get(t, h, "/card.png?seed=7&rows=2&cols=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 400 {
		t.Errorf("image is %dx%d, want 600x400", b.Dx(), b.Dy())
	}
}

func TestCardEndpointValidation(t *testing.T) {
	h := testHandler(t)

	tests := []struct {
		name string
		path string
	}{
		{"zero rows", "/card.png?rows=0"},
		{"negative cols", "/card.png?cols=-2"},
		{"grid larger than word list", "/card.png?rows=9&cols=9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.path)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestIndexPage(t *testing.T) {
	h := testHandler(t)

	rec := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{"Keyword Bingo", "/card.png", wordlist.Default().Checksum} {
		if !strings.Contains(body, want) {
			t.Errorf("index page does not contain %q", want)
		}
	}
}

func TestHealthz(t *testing.T) {
	h := testHandler(t)

	rec := get(t, h, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "ok" {
		t.Errorf("body = %q, want %q", got, "ok")
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		cfg, err := FromEnv()
		if err != nil {
			t.Fatalf("FromEnv: %v", err)
		}
		if cfg.Addr != ":8080" {
			t.Errorf("Addr = %q, want %q", cfg.Addr, ":8080")
		}
	})

	t.Run("override", func(t *testing.T) {
		t.Setenv("BINGOSMITH_ADDR", "127.0.0.1:9999")
		cfg, err := FromEnv()
		if err != nil {
			t.Fatalf("FromEnv: %v", err)
		}
		if cfg.Addr != "127.0.0.1:9999" {
			t.Errorf("Addr = %q, want %q", cfg.Addr, "127.0.0.1:9999")
		}
	})
}
