package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "corolla", want: "corolla"},
		{name: "percent", input: "%", want: `\%`},
		{name: "underscore", input: "gt_86", want: `gt\_86`},
		{name: "backslash", input: `a\b`, want: `a\\b`},
		{name: "mixed", input: `50%_off\`, want: `50\%\_off\\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.input))
		})
	}
}
