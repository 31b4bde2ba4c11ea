package core

import (
	"regexp"
	"strings"
)

// blankRuns matches runs of three or more consecutive newlines.
var blankRuns = regexp.MustCompile(`\n{3,}`)

// NormalizeCode cleans a raw code string for embedding in an answer:
// literal \n, \" and \\ escape sequences become their characters, runs
// of blank lines collapse to a single blank line, and surrounding
// whitespace is trimmed. Total over all input; never fails.
func NormalizeCode(code string) string {
	code = strings.ReplaceAll(code, `\n`, "\n")
	code = strings.ReplaceAll(code, `\"`, `"`)
	code = strings.ReplaceAll(code, `\\`, `\`)
	code = blankRuns.ReplaceAllString(code, "\n\n")
	return strings.TrimSpace(code)
}
