package ingest

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewDocumentTrims(t *testing.T) {
	doc, err := NewDocument("  今日は晴天だ。\n")
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	if doc.Text != "今日は晴天だ。" {
		t.Errorf("Text = %q", doc.Text)
	}
	if _, err := uuid.Parse(doc.ID); err != nil {
		t.Errorf("ID %q is not a uuid: %v", doc.ID, err)
	}
	if doc.CreatedAt.IsZero() || doc.CreatedAt.Location().String() != "UTC" {
		t.Errorf("CreatedAt = %v", doc.CreatedAt)
	}
}

func TestNewDocumentEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := NewDocument(in); !errors.Is(err, ErrEmpty) {
			t.Errorf("NewDocument(%q) err = %v, want ErrEmpty", in, err)
		}
	}
}

func TestNewDocumentDistinctIDs(t *testing.T) {
	a, _ := NewDocument("a")
	b, _ := NewDocument("a")
	if a.ID == b.ID {
		t.Errorf("ids collide: %s", a.ID)
	}
}

func TestQueueDropsWhenFull(t *testing.T) {
	q := NewQueue(1)
	a, _ := NewDocument("一")
	b, _ := NewDocument("二")
	if !q.Offer(a) {
		t.Fatal("first offer rejected")
	}
	if q.Offer(b) {
		t.Error("second offer should be dropped")
	}
	q.Close()
	var got []Document
	for d := range q.C() {
		got = append(got, d)
	}
	if len(got) != 1 || got[0].ID != a.ID {
		t.Errorf("drained %v", got)
	}
}
