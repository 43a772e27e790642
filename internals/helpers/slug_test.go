package helper

import (
	"strings"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Belajar Go":          "belajar-go",
		"  CSS & HTML Dasar ": "css-html-dasar",
		"100% Komplit!":       "100-komplit",
		"---":                 "",
	}
	for in, want := range cases {
		if got := GenerateSlug(in); got != want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateUniqueSlugHasTimestampSuffix(t *testing.T) {
	slug := GenerateUniqueSlug("Belajar Go")
	if !strings.HasPrefix(slug, "belajar-go-") {
		t.Fatalf("prefix salah: %q", slug)
	}
	if len(slug) <= len("belajar-go-") {
		t.Fatalf("suffix timestamp hilang: %q", slug)
	}
}
