package utils

import (
	"strings"
	"testing"
)

// TestSanitizeFilename strips traversal and path components.
func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\system32`, "system32"},
		{"/absolute/path/file.txt", "file.txt"},
		{"name with spaces.txt", "name_with_spaces.txt"},
		{"", "file"},
		{"....", "file"},
		{"..", "file"},
	}
	for _, tc := range cases {
		got := SanitizeFilename(tc.in)
		if got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if strings.Contains(got, "..") || strings.ContainsAny(got, `/\`) {
			t.Errorf("SanitizeFilename(%q) = %q still unsafe", tc.in, got)
		}
	}
}

// TestSanitizeHeaderFilename removes header-breaking characters.
func TestSanitizeHeaderFilename(t *testing.T) {
	if got := SanitizeHeaderFilename("a\r\nb\"c"); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := SanitizeHeaderFilename("  "); got != "download" {
		t.Fatalf("got %q", got)
	}
}
