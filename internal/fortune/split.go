// SPDX-License-Identifier: MPL-2.0

package fortune

import "strings"

// Delimiter separates quotes inside a corpus file.
const Delimiter = "\n%\n"

// Split breaks text into quotes on Delimiter.
//
// Quote text is preserved as-is, including internal newlines. Empty text
// yields a single empty quote. A trailing empty entry, left by a file that
// ends with the delimiter, is dropped.
func Split(text string) []string {
	quotes := strings.Split(text, Delimiter)
	if n := len(quotes); n > 1 && quotes[n-1] == "" {
		quotes = quotes[:n-1]
	}
	return quotes
}
