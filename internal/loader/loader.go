package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/spectrabench/internal/models"
)

// NoFilesError signals a results directory with nothing to summarise.
// Distinct from a repo with zero diagnostics: this means no inputs at all.
type NoFilesError struct {
	Dir string
}

func (e *NoFilesError) Error() string {
	return fmt.Sprintf("no JSON files found in %s", e.Dir)
}

// Load reads every *.json file in dir, in lexicographic order, and parses
// each into a ResultDocument. A whitespace-only file yields a document with
// zero diagnostics; malformed JSON aborts the load. Corrupted benchmark data
// must never be summarised as "no findings".
func Load(dir string) ([]models.ResultDocument, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, &NoFilesError{Dir: dir}
	}

	// filepath.Glob returns results in lexical order already; the fold
	// depends on that for deterministic output.
	docs := make([]models.ResultDocument, 0, len(files))
	for _, file := range files {
		doc, err := loadFile(file)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// loadFile parses a single result file.
func loadFile(path string) (models.ResultDocument, error) {
	doc := models.ResultDocument{
		Repo: RepoID(path),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("read %s: %w", path, err)
	}

	// Scan runs that crashed before producing output leave empty files
	// behind; those still count as a scanned repo.
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}

	var payload struct {
		Diagnostics []models.Diagnostic `json:"diagnostics"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return doc, fmt.Errorf("parse %s: %w", path, err)
	}

	doc.Diagnostics = payload.Diagnostics
	return doc, nil
}

// RepoID derives the repository identifier from a result file path: the
// base name with the .json suffix stripped.
func RepoID(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".json")
}
