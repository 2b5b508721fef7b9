package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single line with terminator",
			input:    "main\n",
			expected: []string{"main"},
		},
		{
			name:     "multiple lines",
			input:    "  main\n* feature\n",
			expected: []string{"  main", "* feature"},
		},
		{
			name:     "no trailing terminator",
			input:    "main",
			expected: []string{"main"},
		},
		{
			name:     "multiple trailing terminators never produce empty entries",
			input:    "main\n\n\n",
			expected: []string{"main"},
		},
		{
			name:     "interior blank lines are preserved",
			input:    "subject\n\nbody\n",
			expected: []string{"subject", "", "body"},
		},
		{
			name:     "crlf terminators are stripped",
			input:    "main\r\nfeature\r\n",
			expected: []string{"main", "feature"},
		},
		{
			name:     "empty output",
			input:    "",
			expected: []string{},
		},
		{
			name:     "only terminators",
			input:    "\n\n",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, SplitLines(tt.input))
		})
	}
}
