package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"japaneseregister/ingest"
	"japaneseregister/logger"
	"japaneseregister/register"
	"japaneseregister/store"
	"japaneseregister/tokenize"
)

// newConverter builds a converter on the IPADIC tokenizer.
func newConverter() (*register.Converter, error) {
	tok, err := tokenize.New(tokenize.WithNormalize(cfg.NormalizeEnabled()))
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer: %w", err)
	}
	return register.New(tok), nil
}

// openMemo opens the configured conversion memo, or returns nil when none is
// configured.
func openMemo() (*store.Store, error) {
	if cfg.CachePath == "" {
		return nil, nil
	}
	db, err := store.New(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return db, nil
}

// readInput takes text from args, then from file ("-" is stdin), then from
// stdin.
func readInput(args []string, file string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if file != "" && file != "-" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(b), nil
}

// splitDocuments makes one document of text, or one per non-blank line when
// perLine is set.
func splitDocuments(text string, perLine bool) ([]ingest.Document, error) {
	if !perLine {
		doc, err := ingest.NewDocument(text)
		if err != nil {
			return nil, err
		}
		return []ingest.Document{doc}, nil
	}
	var docs []ingest.Document
	for _, line := range strings.Split(text, "\n") {
		doc, err := ingest.NewDocument(line)
		if err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, ingest.ErrEmpty
	}
	return docs, nil
}

type converted struct {
	doc    ingest.Document
	output string
	err    error
}

// convertAll runs docs through a queue consumed by one worker and returns the
// results in input order. A memo hit skips analysis.
func convertAll(ctx context.Context, conv *register.Converter, memo *store.Store, dir register.Direction, docs []ingest.Document) []converted {
	q := ingest.NewQueue(len(docs))
	for _, d := range docs {
		q.Offer(d)
	}
	q.Close()

	results := make(chan converted, len(docs))
	go func() {
		defer close(results)
		for doc := range q.C() {
			out, err := convertOne(ctx, conv, memo, dir, doc)
			results <- converted{doc: doc, output: out, err: err}
		}
	}()

	out := make([]converted, 0, len(docs))
	for r := range results {
		out = append(out, r)
	}
	return out
}

func convertOne(ctx context.Context, conv *register.Converter, memo *store.Store, dir register.Direction, doc ingest.Document) (string, error) {
	if memo != nil {
		if out, ok, err := memo.Get(ctx, string(dir), doc.Text); err != nil {
			log.Printf("[store] lookup failed for %s: %v", doc.ID, err)
		} else if ok {
			log.Printf("[store] hit for %s", doc.ID)
			return out, nil
		}
	}

	rep, err := conv.Inspect(dir, doc.Text)
	if err != nil {
		return "", err
	}
	if cfg.TraceDir != "" {
		trace := struct {
			Document ingest.Document `json:"document"`
			Report   register.Report `json:"report"`
		}{doc, rep}
		if err := (logger.Tracer{Dir: cfg.TraceDir}).Write(doc.ID, trace); err != nil {
			log.Printf("[trace] failed to write trace for %s: %v", doc.ID, err)
		}
	}
	if memo != nil {
		_ = memo.Put(ctx, string(dir), doc.Text, rep.Output)
	}
	return rep.Output, nil
}
