package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify_BasicCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "login", "login"},
		{"mixed case", "User Dashboard", "user-dashboard"},
		{"digits kept", "OAuth2 Flow", "oauth2-flow"},
		{"punctuation collapses", "Sign-up & Billing!!", "sign-up-billing"},
		{"consecutive symbols", "a  --  b", "a-b"},
		{"leading symbols", "  hello", "hello"},
		{"trailing symbols", "hello!  ", "hello"},
		{"unicode stripped", "café menu", "caf-menu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugify_EmptyAndAllSymbolInput(t *testing.T) {
	assert.Equal(t, "", Slugify(""))
	assert.Equal(t, "", Slugify("!!!"))
	assert.Equal(t, "", Slugify("   "))
	assert.Equal(t, "", Slugify("---"))
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"", "Build Login Page", "already-a-slug", "A (very) odd -- name?!",
		"---", "123", "CAPS ONLY",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "Slugify must be idempotent for %q", in)
	}
}
