package ocr

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Document is one OCR document read from disk: the raw JSON payload plus the
// source it was read from (file path, or the "source" field of a JSONL row).
type Document struct {
	Source string
	Data   []byte
}

type jsonlRow struct {
	Source  string          `json:"source"`
	Content json.RawMessage `json:"content"`
}

// WalkDocuments reads OCR documents from path and calls fn for each one.
// path may be a single .json document, a .jsonl or .jsonl.gz dump where each
// row carries {"source": ..., "content": {...}}, or a directory walked
// recursively for .json files. fn returning an error stops the walk.
func WalkDocuments(path string, fn func(Document) error) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if info.IsDir() {
		return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(p) != ".json" {
				return nil
			}
			data, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("read %s: %w", p, err)
			}
			return fn(Document{Source: p, Data: data})
		})
	}

	switch {
	case strings.HasSuffix(path, ".jsonl") || strings.HasSuffix(path, ".jsonl.gz"):
		return walkJSONL(path, fn)
	case strings.HasSuffix(path, ".json"):
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		return fn(Document{Source: path, Data: data})
	default:
		return fmt.Errorf("unrecognized input file: %s", path)
	}
}

func walkJSONL(path string, fn func(Document) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("open gzip %s: %w", path, err)
		}
		defer gz.Close()
		reader = gz
	}

	scanner := bufio.NewScanner(reader)
	// OCR documents routinely exceed bufio's default 64KiB line limit.
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		var row jsonlRow
		if err := json.Unmarshal(scanner.Bytes(), &row); err != nil {
			return fmt.Errorf("%s line %d: %w", path, line, err)
		}
		if len(row.Content) == 0 {
			continue
		}
		source := strings.ReplaceAll(row.Source, "//", "/")
		if err := fn(Document{Source: source, Data: row.Content}); err != nil {
			return err
		}
	}
	return scanner.Err()
}
