// Package logger writes per-document clause traces as JSON files.
package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const traceSuffix = "_clauses.json"

// Tracer writes traces into Dir. Only files named <id>_clauses.json belong
// to it; anything else in Dir is left alone.
type Tracer struct {
	Dir string
}

// Prepare creates Dir if needed and removes traces from earlier runs.
func (t Tracer) Prepare() error {
	if err := os.MkdirAll(t.Dir, 0o755); err != nil {
		return err
	}
	stale, err := filepath.Glob(filepath.Join(t.Dir, "*"+traceSuffix))
	if err != nil {
		return err
	}
	for _, f := range stale {
		_ = os.Remove(f)
	}
	return nil
}

// Path is where the trace for docID is written. Directory parts of docID
// are dropped.
func (t Tracer) Path(docID string) string {
	return filepath.Join(t.Dir, filepath.Base(docID)+traceSuffix)
}

// Write stores v as indented JSON at Path(docID). The file appears under
// its final name only once fully written.
func (t Tracer) Write(docID string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(t.Dir, 0o755); err != nil {
		return err
	}
	final := t.Path(docID)
	tmp, err := os.CreateTemp(t.Dir, strings.TrimSuffix(filepath.Base(final), ".json")+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), final); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
