// Package server exposes register conversion as a JSON REST API.
//
// Endpoints:
//
//	POST /api/polite   body: {"text":"..."}
//	POST /api/plain    body: {"text":"..."}
//	POST /api/clauses  body: {"text":"...", "direction":"polite"|"plain"}
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/rs/cors"

	"japaneseregister/clause"
	"japaneseregister/inflect"
	"japaneseregister/register"
)

// Converter is the part of register.Converter the server needs.
type Converter interface {
	Inspect(dir register.Direction, text string) (register.Report, error)
}

// Memo caches finished conversions. store.Store satisfies it.
type Memo interface {
	Get(ctx context.Context, direction, text string) (string, bool, error)
	Put(ctx context.Context, direction, text, output string) error
}

type Options struct {
	AllowedOrigins []string
	Memo           Memo
}

// ---- JSON types ---------------------------------------------------------

type convertRequest struct {
	Text      string `json:"text"`
	Direction string `json:"direction,omitempty"`
}

type convertResponse struct {
	Text   string `json:"text"`
	Output string `json:"output"`
	Cached bool   `json:"cached,omitempty"`
}

type clausesResponse struct {
	Text      string                  `json:"text"`
	Direction register.Direction      `json:"direction"`
	Output    string                  `json:"output"`
	Clauses   []register.ClauseReport `json:"clauses"`
	Warnings  []clause.Warning        `json:"warnings,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[server] encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps conversion failures to HTTP status codes.
func statusFor(err error) int {
	if errors.Is(err, register.ErrUnsupportedCopulaPairing) || errors.Is(err, inflect.ErrUnsupportedConjugation) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func decode(w http.ResponseWriter, r *http.Request) (convertRequest, bool) {
	var body convertRequest
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return body, false
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Text) == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return body, false
	}
	return body, true
}

// ---- handlers -----------------------------------------------------------

func handleConvert(conv Converter, memo Memo, dir register.Direction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decode(w, r)
		if !ok {
			return
		}
		if memo != nil {
			out, hit, err := memo.Get(r.Context(), string(dir), body.Text)
			if err != nil {
				log.Printf("[server] memo lookup: %v", err)
			} else if hit {
				writeJSON(w, http.StatusOK, convertResponse{Text: body.Text, Output: out, Cached: true})
				return
			}
		}

		rep, err := conv.Inspect(dir, body.Text)
		if err != nil {
			log.Printf("[server] %s conversion failed: %v", dir, err)
			writeError(w, statusFor(err), err.Error())
			return
		}
		if memo != nil {
			_ = memo.Put(r.Context(), string(dir), body.Text, rep.Output)
		}
		writeJSON(w, http.StatusOK, convertResponse{Text: body.Text, Output: rep.Output})
	}
}

func handleClauses(conv Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decode(w, r)
		if !ok {
			return
		}
		dir := register.Polite
		if body.Direction != "" {
			d, err := register.ParseDirection(body.Direction)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			dir = d
		}
		rep, err := conv.Inspect(dir, body.Text)
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, clausesResponse{
			Text:      body.Text,
			Direction: dir,
			Output:    rep.Output,
			Clauses:   rep.Clauses,
			Warnings:  rep.Warnings,
		})
	}
}

// New builds the API handler wrapped in a CORS layer.
func New(conv Converter, opts Options) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/polite", handleConvert(conv, opts.Memo, register.Polite))
	mux.HandleFunc("/api/plain", handleConvert(conv, opts.Memo, register.Plain))
	mux.HandleFunc("/api/clauses", handleClauses(conv))

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}
