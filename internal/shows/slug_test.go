package shows

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"Journey Through the Solar System", "journey-through-the-solar-system"},
		{"One Small Step", "one-small-step"},
		{"  spaces   everywhere  ", "spaces-everywhere"},
		{"Ünïcode & Symbols!!", "n-code-symbols"},
		{"already-slugged", "already-slugged"},
		{"UPPER CASE 42", "upper-case-42"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, slugify(tt.in), "input %q", tt.in)
	}
}
