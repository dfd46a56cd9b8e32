package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"whitespace only", "  \n\t ", 0},
		{"plain prose", "three plain words", 3},
		{"heading markers dissolve", "## Getting Started", 2},
		{"table syntax dissolves", "| Name | Hex |\n|------|-----|", 2},
		{"link keeps text and target", "[PRIME.md](PRIME.md)", 2},
		{"emphasis stripped", "**bold** and _em_", 3},
		{"code fence", "```sql\nSELECT 1;\n```", 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CountWords(tc.input))
		})
	}
}

func TestCountWords_MonotonicUnderTruncation(t *testing.T) {
	doc := "# Title\n\nSome prose with **bold** words.\n\n- item one\n- item two\n\n| a | b |\n"
	full := CountWords(doc)
	for i := 0; i <= len(doc); i++ {
		assert.LessOrEqual(t, CountWords(doc[:i]), full, "prefix of %d bytes counted higher", i)
	}
}
