package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

const extractFixture = `<html><body>
<h1>Operations Handbook</h1>
<p>routine duties are described in the pages below</p>
<p>each shift begins with a standard equipment check</p>
<p>exceptions are escalated through the duty manager</p>
<h2>A Very Long Subsection Heading That Runs On</h2>
</body></html>`

func runExtract(t *testing.T, args []string) {
	t.Helper()
	cmd := extractCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("extract failed: %v", err)
	}
}

func readOutline(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var decoded struct {
		Outline []struct {
			Text string `json:"text"`
		} `json:"outline"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	texts := make([]string, 0, len(decoded.Outline))
	for _, e := range decoded.Outline {
		texts = append(texts, e.Text)
	}
	return texts
}

func TestExtractMaxHeadingLengthFlag(t *testing.T) {
	input := filepath.Join(t.TempDir(), "handbook.html")
	if err := os.WriteFile(input, []byte(extractFixture), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	// Default cap keeps both headings.
	defOut := t.TempDir()
	runExtract(t, []string{"--input", input, "--output-dir", defOut})
	texts := readOutline(t, filepath.Join(defOut, "handbook.json"))
	if len(texts) != 2 {
		t.Fatalf("default entries = %v, want both headings", texts)
	}

	// A tighter cap drops the overlong subsection heading.
	capOut := t.TempDir()
	runExtract(t, []string{"--input", input, "--output-dir", capOut, "--max-heading-length", "30"})
	texts = readOutline(t, filepath.Join(capOut, "handbook.json"))
	if len(texts) != 1 || texts[0] != "Operations Handbook" {
		t.Errorf("capped entries = %v, want only Operations Handbook", texts)
	}
}
