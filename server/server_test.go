package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"japaneseregister/inflect"
	"japaneseregister/model"
	"japaneseregister/register"
	"japaneseregister/store"
)

type fakeConverter struct {
	calls int
	err   error
}

func (f *fakeConverter) Inspect(dir register.Direction, text string) (register.Report, error) {
	f.calls++
	if f.err != nil {
		return register.Report{}, f.err
	}
	out := text + "/" + string(dir)
	return register.Report{
		Direction: dir,
		Input:     text,
		Output:    out,
		Clauses:   []register.ClauseReport{{Index: 0, Input: text, Output: out}},
	}, nil
}

type mapMemo map[string]string

func (m mapMemo) Get(_ context.Context, dir, text string) (string, bool, error) {
	out, ok := m[dir+"|"+text]
	return out, ok, nil
}

func (m mapMemo) Put(_ context.Context, dir, text, output string) error {
	m[dir+"|"+text] = output
	return nil
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestConvertEndpoints(t *testing.T) {
	h := New(&fakeConverter{}, Options{})
	for _, tc := range []struct {
		path string
		want string
	}{
		{"/api/polite", "今日は晴天だ。/polite"},
		{"/api/plain", "今日は晴天だ。/plain"},
	} {
		rec := post(t, h, tc.path, `{"text":"今日は晴天だ。"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d: %s", tc.path, rec.Code, rec.Body)
		}
		var resp convertResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatal(err)
		}
		if resp.Text != "今日は晴天だ。" || resp.Output != tc.want {
			t.Errorf("%s = %+v", tc.path, resp)
		}
	}
}

func TestBadRequests(t *testing.T) {
	h := New(&fakeConverter{}, Options{})
	for _, body := range []string{``, `not json`, `{"text":""}`, `{"text":"   "}`} {
		if rec := post(t, h, "/api/polite", body); rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d", body, rec.Code)
		}
	}
	req := httptest.NewRequest(http.MethodGet, "/api/polite", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET status = %d", rec.Code)
	}
}

func TestConversionErrorsAre422(t *testing.T) {
	for _, err := range []error{
		fmt.Errorf("clause 0: %w", &register.CopulaPairingError{Lemma: "です", Slot: model.Negative}),
		fmt.Errorf("continuative: %w", &inflect.UnsupportedConjugationError{Surface: "x"}),
	} {
		h := New(&fakeConverter{err: err}, Options{})
		rec := post(t, h, "/api/polite", `{"text":"雨だん"}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("%v: status = %d", err, rec.Code)
		}
		var resp errorResponse
		_ = json.NewDecoder(rec.Body).Decode(&resp)
		if resp.Error == "" {
			t.Error("missing error message")
		}
	}
	h := New(&fakeConverter{err: fmt.Errorf("boom")}, Options{})
	if rec := post(t, h, "/api/plain", `{"text":"a"}`); rec.Code != http.StatusInternalServerError {
		t.Errorf("generic error status = %d", rec.Code)
	}
}

func TestMemoShortCircuits(t *testing.T) {
	conv := &fakeConverter{}
	memo := mapMemo{}
	h := New(conv, Options{Memo: memo})

	post(t, h, "/api/polite", `{"text":"雨だ。"}`)
	rec := post(t, h, "/api/polite", `{"text":"雨だ。"}`)
	var resp convertResponse
	json.NewDecoder(rec.Body).Decode(&resp)
	if !resp.Cached || resp.Output != "雨だ。/polite" {
		t.Errorf("second response = %+v", resp)
	}
	if conv.calls != 1 {
		t.Errorf("converter called %d times, want 1", conv.calls)
	}
}

func TestMemoKeysExactText(t *testing.T) {
	db, err := store.New(filepath.Join(t.TempDir(), "memo.db"))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	defer db.Close()
	conv := &fakeConverter{}
	h := New(conv, Options{Memo: db})

	post(t, h, "/api/polite", `{"text":"\u3000\u3000晴天だ"}`)
	rec := post(t, h, "/api/polite", `{"text":"晴天だ"}`)
	var resp convertResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Cached || resp.Output != "晴天だ/polite" {
		t.Errorf("response = %+v, want a fresh conversion of its own input", resp)
	}
	if conv.calls != 2 {
		t.Errorf("converter called %d times, want 2", conv.calls)
	}
}

func TestClausesEndpoint(t *testing.T) {
	h := New(&fakeConverter{}, Options{})
	rec := post(t, h, "/api/clauses", `{"text":"雨だ。","direction":"plain"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var resp clausesResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Direction != register.Plain || len(resp.Clauses) != 1 {
		t.Errorf("resp = %+v", resp)
	}

	if rec := post(t, h, "/api/clauses", `{"text":"雨だ。","direction":"sideways"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("bad direction status = %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := New(&fakeConverter{}, Options{AllowedOrigins: []string{"https://example.com"}})
	req := httptest.NewRequest(http.MethodOptions, "/api/polite", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/polite", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin got Allow-Origin %q", got)
	}
}
