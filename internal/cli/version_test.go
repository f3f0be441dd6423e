package cli

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestVersionCmd mirrors versionCmd but prints through cmd so output
// can be captured.
func createTestVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use: "version",
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				cmd.Println(version)
				return
			}
			cmd.Printf("statable %s\n", formatVersion(version))
			cmd.Printf("commit: %s\n", commit)
			cmd.Printf("built: %s\n", date)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "")
	return cmd
}

func withVersion(t *testing.T, v, c, d string) {
	t.Helper()
	origVersion, origCommit, origDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = origVersion, origCommit, origDate
	})
	SetVersionInfo(v, c, d)
}

func TestVersionOutput(t *testing.T) {
	tests := []struct {
		name    string
		version string
		args    []string
		want    []string
	}{
		{
			name:    "release",
			version: "1.2.3",
			want:    []string{"statable v1.2.3", "commit: abc1234", "built: 2025-01-08T12:00:00Z"},
		},
		{
			name:    "dev build keeps bare version",
			version: "dev",
			want:    []string{"statable dev"},
		},
		{
			name:    "short",
			version: "1.2.3",
			args:    []string{"--short"},
			want:    []string{"1.2.3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, tt.version, "abc1234", "2025-01-08T12:00:00Z")

			cmd := createTestVersionCmd()
			var buf bytes.Buffer
			cmd.SetOut(&buf)
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestVersionInfo(t *testing.T) {
	withVersion(t, "0.4.0", "deadbee", "2025-03-01")

	info := versionInfo()

	assert.Equal(t, "v0.4.0", info["version"])
	assert.Equal(t, "deadbee", info["commit"])
	assert.Equal(t, "2025-03-01", info["built"])
	assert.Equal(t, runtime.Version(), info["go"])
	assert.True(t, strings.HasPrefix(info["os_arch"], runtime.GOOS+"/"))
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"dev", "dev"},
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
		{"1.2.3-beta.1", "v1.2.3-beta.1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.input))
		})
	}
}

func TestVersionCommandHasShortFlag(t *testing.T) {
	flag := versionCmd.Flags().Lookup("short")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestGetVersion(t *testing.T) {
	withVersion(t, "3.0.0", "none", "unknown")
	assert.Equal(t, "3.0.0", GetVersion())
}
