// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"strings"
	"testing"
)

// QuoteDelimiter separates quotes in corpus files.
const QuoteDelimiter = "\n%\n"

// WriteCorpus creates a temporary corpus directory holding one file per
// entry of files (name -> content) and returns its path.
func WriteCorpus(t testing.TB, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		MustWriteFile(t, filepath.Join(dir, name), content)
	}
	return dir
}

// JoinQuotes builds corpus file content from individual quotes.
func JoinQuotes(quotes ...string) string {
	return strings.Join(quotes, QuoteDelimiter)
}
