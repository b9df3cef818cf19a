// Package export renders a design document as a Lua script or as ZomBroX
// JSON, and parses ZomBroX JSON back into a document.
package export

import (
	"strconv"
	"strings"
)

// formatNumber renders v as the shortest locale-independent decimal that
// parses back to v: 5 -> "5", 0.85 -> "0.85".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// luaQuote renders s as a double-quoted Lua string literal.
func luaQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				// Three digits so a following digit is not absorbed into the escape.
				b.WriteString(`\`)
				b.WriteString(padCode(int(c)))
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func padCode(c int) string {
	s := strconv.Itoa(c)
	return strings.Repeat("0", 3-len(s)) + s
}

// luaComment keeps s on a single comment line.
func luaComment(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
