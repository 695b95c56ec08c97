package vimball

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArchiveName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		base    string
		want    string
		wantErr error
	}{
		{name: "simple base", base: "pack", want: "pack.vba"},
		{name: "base with directory", base: "dist/pack", want: "dist/pack.vba"},
		{name: "base with dash and underscore", base: "my-plugin_v2", want: "my-plugin_v2.vba"},
		{name: "dot anywhere is rejected", base: "out.bad", wantErr: ErrDotInBase},
		{name: "leading dot is rejected", base: ".hidden", wantErr: ErrDotInBase},
		{name: "trailing dot is rejected", base: "pack.", wantErr: ErrDotInBase},
		{name: "empty base is rejected", base: "", wantErr: ErrEmptyBase},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ArchiveName(tc.base)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Empty(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestHeaderIsThreeLines(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{
		"\" Vimball Archiver by Charles E. Campbell, Jr., Ph.D.",
		"UseVimball",
		"finish",
		"",
	}, strings.Split(Header, "\n"))
}

func TestCountLines(t *testing.T) {
	t.Parallel()

	testCases := map[string]int64{
		"":            0,
		"no newline":  0,
		"a\n":         1,
		"a\nb":        1,
		"a\r\nb\r\n":  2,
		"\n\n\n":      3,
		"x\ny\nz\n\n": 4,
	}

	for input, want := range testCases {
		got, err := countLines(strings.NewReader(input))
		require.NoError(t, err)
		require.Equal(t, want, got, "input %q", input)
	}
}
