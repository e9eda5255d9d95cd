package ingest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmpty is returned for input that is empty after trimming.
var ErrEmpty = errors.New("empty document")

// Document is one piece of text submitted for register conversion.
type Document struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDocument trims text, rejects empty input and stamps the result with a
// fresh id and a UTC timestamp.
func NewDocument(text string) (Document, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Document{}, ErrEmpty
	}
	return Document{
		ID:        uuid.New().String(),
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Queue buffers documents for a downstream consumer.
type Queue struct {
	ch chan Document
}

func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{ch: make(chan Document, size)}
}

// Offer publishes doc without blocking and reports whether it was accepted.
// A full queue drops the document.
func (q *Queue) Offer(doc Document) bool {
	select {
	case q.ch <- doc:
		return true
	default:
		return false
	}
}

// C is the receive side of the queue.
func (q *Queue) C() <-chan Document { return q.ch }

// Close stops further Offers; pending documents can still be drained.
func (q *Queue) Close() { close(q.ch) }
