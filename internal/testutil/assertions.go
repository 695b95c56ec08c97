package testutil

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/specialistvlad/mkvimball/internal/vimball"
	"github.com/stretchr/testify/require"
)

// EntryText renders the bytes one archive entry should occupy.
func EntryText(path, content string) string {
	return fmt.Sprintf("%s\t%s\n%d\n%s", path, vimball.FoldMarker, strings.Count(content, "\n"), content)
}

// ArchiveText renders a whole archive from (path, content) pairs.
func ArchiveText(pairs ...string) string {
	if len(pairs)%2 != 0 {
		panic("ArchiveText needs path/content pairs")
	}
	var b strings.Builder
	b.WriteString(vimball.Header)
	for i := 0; i < len(pairs); i += 2 {
		b.WriteString(EntryText(pairs[i], pairs[i+1]))
	}
	return b.String()
}

// AssertSkipped checks the log output for the warning emitted when path
// could not be opened.
func AssertSkipped(t *testing.T, result *HarnessResult, path string) {
	t.Helper()

	require.True(t,
		strings.Contains(result.LogOutput, "Unable to open file, skipping.") &&
			strings.Contains(result.LogOutput, "path="+quoteIfNeeded(path)),
		"expected a skip warning for path %q in logs:\n%s", path, result.LogOutput,
	)
}

// quoteIfNeeded mirrors how slog's text handler renders string values.
func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\r\"=") {
		return strconv.Quote(s)
	}
	return s
}
