// ABOUTME: Tests for description HTML detection, markdown conversion, and excerpts
// ABOUTME: Verifies plain text passes through untouched

package content

import (
	"strings"
	"testing"
)

func TestIsHTML(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"<p>A fine racing game</p>", true},
		{"<div class=\"desc\">text</div>", true},
		{"<!DOCTYPE html><html></html>", true},
		{"Just a plain description", false},
		{"velocity < 3 and time > 2", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsHTML(tt.in); got != tt.want {
			t.Errorf("IsHTML(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToMarkdownConvertsHTML(t *testing.T) {
	got := ToMarkdown("<p>Race <strong>fast</strong> bikes</p>")
	if !strings.Contains(got, "**fast**") {
		t.Errorf("expected bold markdown, got %q", got)
	}
	if strings.Contains(got, "<p>") {
		t.Errorf("expected tags removed, got %q", got)
	}
}

func TestToMarkdownPassesPlainTextThrough(t *testing.T) {
	in := "A realistic simulation game"
	if got := ToMarkdown(in); got != in {
		t.Errorf("plain text must pass through, got %q", got)
	}
	if got := ToMarkdown(""); got != "" {
		t.Errorf("empty input must stay empty, got %q", got)
	}
}

func TestExcerpt(t *testing.T) {
	got := Excerpt("<p>Race <strong>fast</strong> bikes\nacross hills</p>", 100)
	if got != "Race fast bikes across hills" {
		t.Errorf("Excerpt = %q", got)
	}

	long := strings.Repeat("word ", 50)
	short := Excerpt(long, 20)
	if len([]rune(short)) > 20 {
		t.Errorf("Excerpt too long: %q", short)
	}
	if !strings.HasSuffix(short, "…") {
		t.Errorf("truncated excerpt must end with ellipsis: %q", short)
	}
}
