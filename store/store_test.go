package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "memo.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	if _, ok, err := s.Get(ctx, "polite", "今日は晴天だ。"); err != nil || ok {
		t.Fatalf("Get on empty store = %v, %v", ok, err)
	}
	if err := s.Put(ctx, "polite", "今日は晴天だ。", "今日は晴天です。"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	out, ok, err := s.Get(ctx, "polite", "今日は晴天だ。")
	if err != nil || !ok || out != "今日は晴天です。" {
		t.Errorf("Get = %q, %v, %v", out, ok, err)
	}
	if _, ok, _ := s.Get(ctx, "plain", "今日は晴天だ。"); ok {
		t.Error("directions must not share entries")
	}
}

func TestGetKeysExactText(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	if err := s.Put(ctx, "polite", "\u3000\u3000晴天だ", "\u3000\u3000晴天です。"); err != nil {
		t.Fatal(err)
	}
	for _, text := range []string{"晴天だ", " \u3000\u3000晴天だ"} {
		if out, ok, err := s.Get(ctx, "polite", text); err != nil || ok {
			t.Errorf("Get(%q) = %q, %v, %v; want miss", text, out, ok, err)
		}
	}
	// か + combining voiced mark is a different key from precomposed が
	if err := s.Put(ctx, "plain", "\u304c", "\u304c"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(ctx, "plain", "\u304b\u3099"); ok {
		t.Error("decomposed text hit the precomposed entry")
	}
}

func TestPutReplacesAndStats(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(s.Put(ctx, "polite", "雨だ。", "雨です。"))
	must(s.Put(ctx, "polite", "雨だ。", "雨でございます。"))
	must(s.Put(ctx, "plain", "雨です。", "雨だ。"))
	if _, _, err := s.Get(ctx, "polite", "雨だ。"); err != nil {
		t.Fatal(err)
	}

	out, _, _ := s.Get(ctx, "polite", "雨だ。")
	if out != "雨でございます。" {
		t.Errorf("Put did not replace output, got %q", out)
	}

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.TotalEntries != 2 || st.PoliteCount != 1 || st.PlainCount != 1 {
		t.Errorf("stats = %+v", st)
	}
	// polite row: 1 on insert + 2 hits; plain row: 1
	if st.TotalUsage != 4 {
		t.Errorf("total usage = %d, want 4", st.TotalUsage)
	}

	entries, err := s.List(ctx)
	if err != nil || len(entries) != 2 {
		t.Fatalf("List = %v, %v", entries, err)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	for _, text := range []string{"一", "二", "三"} {
		if err := s.Put(ctx, "plain", text, text); err != nil {
			t.Fatal(err)
		}
	}
	n, err := s.Clear(ctx)
	if err != nil || n != 3 {
		t.Errorf("Clear = %d, %v", n, err)
	}
	st, _ := s.Stats(ctx)
	if st.TotalEntries != 0 {
		t.Errorf("entries after clear = %d", st.TotalEntries)
	}
}
