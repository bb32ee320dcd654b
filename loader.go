package matapan

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// This file persists monthly documents as one JSON file per month in a
// folder, human-readable and git-friendly. The file stem is expected, but
// not required, to be the month key ("2025-07.json"); the month inside the
// document is authoritative.

const documentFileExt = ".json"

// DecodeDocument decodes a single monthly document from a JSON stream.
// filename is for error messages only.
func DecodeDocument(filename string, r io.Reader) (*MonthlyDocument, error) {
	var doc MonthlyDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("format error in %q: %w", filename, err)
	}
	if doc.Month.IsZero() {
		return nil, fmt.Errorf("format error in %q: document has no month", filename)
	}
	return &doc, nil
}

// DecodeDocuments discovers and loads every monthly document under a
// folder. Duplicate months are a fatal error: the month key is the
// document's identity for the whole run.
func DecodeDocuments(dir string) ([]*MonthlyDocument, error) {
	paths, err := findDocumentPaths(dir)
	if err != nil {
		return nil, err
	}

	seen := make(map[Month]string)
	docs := make([]*MonthlyDocument, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("could not open document file %q: %w", p, err)
		}
		doc, err := DecodeDocument(p, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[doc.Month]; dup {
			return nil, fmt.Errorf("month %s is defined in both %q and %q", doc.Month, prev, p)
		}
		seen[doc.Month] = p
		docs = append(docs, doc)
	}
	return docs, nil
}

// EncodeDocument writes a document in its canonical indented form.
func EncodeDocument(w io.Writer, doc *MonthlyDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode document %s: %w", doc.Month, err)
	}
	return nil
}

// SaveDocument saves a document to its canonical file within the folder
// ("<dir>/<month>.json").
func SaveDocument(dir string, doc *MonthlyDocument) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create document directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, doc.Month.String()+documentFileExt)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening document file %q for writing: %w", path, err)
	}
	defer f.Close()
	return EncodeDocument(f, doc)
}

// LoadSettings reads the settings file, or returns defaults when the file
// does not exist.
func LoadSettings(path string) (*Settings, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open settings file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeSettings(f)
}

// findDocumentPaths scans a directory for monthly document files.
func findDocumentPaths(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, documentFileExt) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not scan document directory %q: %w", dir, err)
	}
	return paths, nil
}
