package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Go Meetup", "go-meetup"},
		{"  Go   Meetup 2025!  ", "go-meetup-2025"},
		{"Café déjà vu", "cafe-deja-vu"},
		{"Встреча клуба", "встреча-клуба"},
		{"C++ & Rust: intro", "c-rust-intro"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugify_Truncates(t *testing.T) {
	slug := Slugify(strings.Repeat("word ", 30))

	assert.LessOrEqual(t, len(slug), maxSlugLen)
	assert.False(t, strings.HasSuffix(slug, "-"))
	assert.True(t, strings.HasPrefix(slug, "word-word"))
}

func TestSlugify_TruncatesOnRuneBoundary(t *testing.T) {
	slug := Slugify(strings.Repeat("ж", 60))

	assert.LessOrEqual(t, len(slug), maxSlugLen)
	assert.True(t, utf8.ValidString(slug))
}
