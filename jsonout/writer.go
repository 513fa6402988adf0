// Package jsonout serializes outlines to the JSON output contract:
//
//	{"title": string|null, "outline": [{"level": "H1".."H4", "text": ..., "page": 0-based}, ...]}
//
// Page numbers are emitted 0-based, matching span page indices verbatim.
package jsonout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkline/outliner/model"
)

// entry is one serialized outline entry.
type entry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// document is the serialized outline. Title is a pointer so a missing
// title round-trips as JSON null rather than an empty string.
type document struct {
	Title   *string `json:"title"`
	Outline []entry `json:"outline"`
}

// Marshal renders an outline to indented JSON per the output contract.
func Marshal(outline *model.Outline) ([]byte, error) {
	doc := document{Outline: make([]entry, 0, len(outline.Entries))}
	if outline.HasTitle {
		title := outline.Title
		doc.Title = &title
	}
	for _, h := range outline.Entries {
		text := strings.TrimSpace(h.Text)
		if text == "" {
			continue
		}
		doc.Outline = append(doc.Outline, entry{
			Level: h.Level.String(),
			Text:  text,
			Page:  h.PageIndex,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Write serializes an outline and writes it to path, creating parent
// directories as needed.
func Write(path string, outline *model.Outline) error {
	data, err := Marshal(outline)
	if err != nil {
		return fmt.Errorf("jsonout: marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("jsonout: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("jsonout: write %s: %w", path, err)
	}
	return nil
}

// OutputName maps an input document name to its outline filename:
// "report.pdf" becomes "report.json".
func OutputName(inputName string) string {
	base := filepath.Base(inputName)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".json"
}
