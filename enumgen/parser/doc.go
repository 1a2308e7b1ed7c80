package parser

import (
	"regexp"
	"strings"

	"github.com/b0x-Cub3d/rust-monaco/enumgen/ir"
)

// docPattern recognizes a leading JSDoc block of the monaco.d.ts form:
//
//	/**
//	 * A line of documentation.
//	 */
var docPattern = regexp.MustCompile(`(?s)^ */\*\*\n(?P<body>.*?) *\*/\n`)

// extractDoc strips a leading documentation-comment block from s and
// returns the payload lines plus the remainder. When s does not begin
// with a doc block it returns zero Documentation and s unchanged; lines
// that are not part of a doc block are never consumed.
func extractDoc(s string) (ir.Documentation, string) {
	caps, rest, err := consumeMatch("documentation block", docPattern, s)
	if err != nil {
		return ir.Documentation{}, s
	}

	body := strings.TrimSuffix(caps["body"], "\n")
	if strings.TrimSpace(body) == "" {
		return ir.Documentation{}, rest
	}

	raw := strings.Split(body, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, docPayload(line))
	}
	return ir.Documentation{Lines: lines}, rest
}

// docPayload strips the leading ` * ` decoration from one line inside a
// doc block, keeping the rest of the line verbatim.
func docPayload(line string) string {
	line = strings.TrimLeft(line, " \t")
	line = strings.TrimPrefix(line, "*")
	return strings.TrimPrefix(line, " ")
}
