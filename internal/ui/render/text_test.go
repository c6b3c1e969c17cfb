package render

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "Hello", "Hello"},
		{"control chars", "a\x00b\x1bc", "abc"},
		{"tab kept", "a\tb", "a\tb"},
		{"invalid utf8", "a\xffb", "ab"},
		{"nbsp", "a\u00a0b", "a b"},
		{"newline dropped", "line\nnext", "linenext"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 6, "hello…"},
		{"zero", "hello", 0, ""},
		{"wide runes", "日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestFit(t *testing.T) {
	if got := Fit("ab", 4); got != "ab  " {
		t.Errorf("Fit pad = %q", got)
	}
	if got := Fit("abcdef", 4); got != "abc…" {
		t.Errorf("Fit cut = %q", got)
	}
}

func TestCenter(t *testing.T) {
	if got := Center("ab", 6); got != "  ab  " {
		t.Errorf("Center = %q", got)
	}
	if got := Center("abc", 6); got != " abc  " {
		t.Errorf("Center odd = %q", got)
	}
}

func TestRow(t *testing.T) {
	if got := Row("L", "R", 5); got != "L   R" {
		t.Errorf("Row = %q", got)
	}
	if got := Row("left", "right", 4); got != "left right" {
		t.Errorf("Row overflow = %q", got)
	}
}
