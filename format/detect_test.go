package format

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		expected Format
	}{
		{"report.pdf", PDF},
		{"REPORT.PDF", PDF},
		{"index.html", HTML},
		{"index.htm", HTML},
		{"page.HTML", HTML},
		{"notes.txt", Unknown},
		{"archive.pdf.gz", Unknown},
		{"noextension", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.expected {
			t.Errorf("Detect(%q) = %s, want %s", tt.filename, got, tt.expected)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected Format
	}{
		{"pdf header", []byte("%PDF-1.7\n"), PDF},
		{"doctype", []byte("<!DOCTYPE html><html></html>"), HTML},
		{"doctype with leading whitespace", []byte("\n  <!doctype HTML>"), HTML},
		{"bare html tag", []byte("<html><body></body></html>"), HTML},
		{"plain text", []byte("just some text"), Unknown},
		{"truncated pdf header", []byte("%PD"), Unknown},
		{"empty", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.expected {
				t.Errorf("DetectFromMagic(%q) = %s, want %s", tt.data, got, tt.expected)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	if PDF.String() != "PDF" || HTML.String() != "HTML" || Unknown.String() != "Unknown" {
		t.Errorf("String() = %s/%s/%s, want PDF/HTML/Unknown", PDF, HTML, Unknown)
	}
}
