package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	tests := []struct {
		name           string
		version        string
		expectedOutput string
	}{
		{
			name:           "version command with dev version",
			version:        "dev",
			expectedOutput: "mcp-lens version dev\n",
		},
		{
			name:           "version command with semantic version",
			version:        "v1.2.3",
			expectedOutput: "mcp-lens version v1.2.3\n",
		},
		{
			name:           "version command with empty version",
			version:        "",
			expectedOutput: "mcp-lens version \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalVersion := rootCmd.Version
			defer func() {
				rootCmd.Version = originalVersion
			}()
			rootCmd.Version = tt.version

			cmd := newVersionCmd()

			var buf bytes.Buffer
			cmd.SetOut(&buf)
			cmd.SetArgs([]string{})

			err := cmd.Execute()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOutput, buf.String())
		})
	}
}
