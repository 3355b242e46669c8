package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"user.name+tag@sub.domain.co", true},
		{"abc", false},
		{"a@b", false}, // no .tld
		{"a@b.", false},
		{"@b.com", false},
		{"a@", false},
		{"a b@c.com", false},
		{"a@b c.com", false},
		{"a@@b.com", false},
		{"", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Email(tc.email), "Email(%q)", tc.email)
	}
}
