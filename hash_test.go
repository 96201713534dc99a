package stylec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashKnownVectors(t *testing.T) {
	// Fixed input/output pairs for the murmur2(seed=1) base-36 scheme.
	// These pin the exact variant; any change here breaks compatibility
	// with previously generated class names.
	tests := []struct {
		in   string
		want string
	}{
		{"", "ph554m"},
		{"a", "acqbnw"},
		{"ab", "rznw1a"},
		{"abc", "qtcrsx"},
		{"abcd", "1ju7jti"},
		{"hello world", "10lo0ku"},
		{"<>colorred", "12ugx35"},
		{"<>colorblue", "8rzcol"},
		{"<>margin-top10px", "5ycent"},
		{"<>background-color:hoverpurple", "k1fkze"},
		{"app/button//primary", "qws8qr"},
		{"vars.buttons.accent", "1x3orw0"},
		{"theme.dark", "id1dcb"},
		{"spin@keyframes", "18phmbk"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Hash(tt.in))
		})
	}
}

func TestHashDeterministic(t *testing.T) {
	assert.Equal(t, Hash("<>display-flexflex"), Hash("<>display-flexflex"))
}

func TestHashNoObservedCollisions(t *testing.T) {
	// Distinct (property, value, condition) triples must never share a hash.
	inputs := []string{
		"<>colorred",
		"<>colorblue",
		"<>color:hoverred",
		"<>background-colorred",
		"<>colorred ", // trailing space is a different value
		"<>margin10px",
		"<>margin-top10px",
	}

	seen := make(map[string]string)
	for _, in := range inputs {
		h := Hash(in)
		prev, dup := seen[h]
		assert.False(t, dup, "hash collision between %q and %q", in, prev)
		seen[h] = in
	}
}
