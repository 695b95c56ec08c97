package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/mkvimball/internal/app"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErrCode  int
		expectErrText  string
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Base name and paths",
			args: []string{"pack", "fileA.txt", "fileB.txt"},
			expectedConfig: &app.Config{
				BaseName:  "pack",
				Paths:     []string{"fileA.txt", "fileB.txt"},
				LogFormat: "text",
				LogLevel:  "info",
			},
		},
		{
			name: "Base name only means interactive",
			args: []string{"pack"},
			expectedConfig: &app.Config{
				BaseName:  "pack",
				LogFormat: "text",
				LogLevel:  "info",
			},
		},
		{
			name: "Happy Path with all flags",
			args: []string{
				"-manifest", "vimball.hcl",
				"--raw-input",
				"--log-level=DEBUG",
				"--log-format=json",
				"override",
				"extra.txt",
			},
			expectedConfig: &app.Config{
				BaseName:     "override",
				Paths:        []string{"extra.txt"},
				ManifestPath: "vimball.hcl",
				RawInput:     true,
				LogFormat:    "json",
				LogLevel:     "debug",
			},
		},
		{
			name: "Shorthand manifest flag without base name",
			args: []string{"-m", "plugin.hcl"},
			expectedConfig: &app.Config{
				ManifestPath: "plugin.hcl",
				LogFormat:    "text",
				LogLevel:     "info",
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
			},
		},
		{
			name:          "Missing base name is fatal",
			args:          []string{},
			expectErrCode: 1,
			expectErrText: "Usage: mkvimball vimballfile [path1 path2 ...]",
		},
		{
			name:          "Dot in base name is fatal",
			args:          []string{"out.bad", "anything"},
			expectErrCode: 1,
			expectErrText: "should have no '.' in it",
		},
		{
			name:          "Dot in base name with manifest is fatal",
			args:          []string{"-m", "x.hcl", "a.txt"},
			expectErrCode: 1,
			expectErrText: "should have no '.' in it",
		},
		{
			name:          "Unknown flag is a usage error",
			args:          []string{"--frobnicate", "pack"},
			expectErrCode: 1,
			expectErrText: "Usage: mkvimball vimballfile",
		},
		{
			name:          "Base name starting with dash needs the terminator",
			args:          []string{"-pack", "a.txt"},
			expectErrCode: 1,
			expectErrText: "put -- before a vimballfile",
		},
		{
			name: "Terminator allows a base name starting with dash",
			args: []string{"--", "-pack", "a.txt"},
			expectedConfig: &app.Config{
				BaseName:  "-pack",
				Paths:     []string{"a.txt"},
				LogFormat: "text",
				LogLevel:  "info",
			},
		},
		{
			name:          "Invalid log level returns an error",
			args:          []string{"--log-level=foo", "pack"},
			expectErrCode: 1,
			expectErrText: "invalid log-level",
		},
		{
			name:          "Invalid log format returns an error",
			args:          []string{"--log-format=yaml", "pack"},
			expectErrCode: 1,
			expectErrText: "invalid log-format",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			appConfig, shouldExit, err := Parse(tc.args, out)

			// --- Assert ---
			if tc.expectErrCode != 0 {
				require.Error(t, err)
				exitErr, isExitError := err.(*ExitError)
				require.True(t, isExitError, "Expected error to be of type ExitError")
				require.Equal(t, tc.expectErrCode, exitErr.Code)
				require.Contains(t, exitErr.Error(), tc.expectErrText)
				require.Nil(t, appConfig)
				return
			}
			require.NoError(t, err)

			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, appConfig); diff != "" {
					t.Errorf("Config mismatch (-want +got):\n%s", diff)
				}
			}

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}
