package ocr

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

const tinyDocument = `{"responses": [{"fullTextAnnotation": {"text": "Sel 0,1g"}}]}`

func TestWalkDocuments_SingleJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "1.json")
	if err := os.WriteFile(path, []byte(tinyDocument), 0o644); err != nil {
		t.Fatal(err)
	}

	var docs []Document
	err := WalkDocuments(path, func(d Document) error {
		docs = append(docs, d)
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDocuments: %v", err)
	}
	if len(docs) != 1 || docs[0].Source != path {
		t.Fatalf("docs = %+v", docs)
	}
	if _, err := ParseResult(docs[0].Data); err != nil {
		t.Errorf("payload does not parse: %v", err)
	}
}

func TestWalkDocuments_Directory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.json", "ignored.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(tinyDocument), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	count := 0
	err := WalkDocuments(dir, func(Document) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDocuments: %v", err)
	}
	if count != 2 {
		t.Errorf("visited %d documents, want 2", count)
	}
}

func TestWalkDocuments_GzippedJSONL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.jsonl.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	lines := `{"source": "//541/012/3456/1.json", "content": ` + tinyDocument + `}
{"source": "/541/012/3456/2.json", "content": ` + tinyDocument + `}
{"source": "/no/content/row.json"}
`
	if _, err := gz.Write([]byte(lines)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	var sources []string
	err = WalkDocuments(path, func(d Document) error {
		sources = append(sources, d.Source)
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDocuments: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("sources = %v, want 2 rows with content", sources)
	}
	// Doubled slashes in the source field are collapsed.
	if sources[0] != "/541/012/3456/1.json" {
		t.Errorf("source[0] = %q", sources[0])
	}
}

func TestWalkDocuments_UnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WalkDocuments(path, func(Document) error { return nil }); err == nil {
		t.Fatal("expected an error for an unrecognized file")
	}
}
