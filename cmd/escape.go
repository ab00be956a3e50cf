package cmd

import (
	"fmt"
	"strings"
)

// unescape expands the backslash sequences redis-cli accepts inside quoted
// arguments, so that CR LF can be typed at a prompt.
func unescape(s string) (string, error) {
	if strings.IndexByte(s, '\\') < 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}

		i++
		if i >= len(s) {
			return "", fmt.Errorf("dangling escape at end of input")
		}
		switch s[i] {
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case '\\', '"', '\'':
			b.WriteByte(s[i])
		case 'x':
			if i+2 >= len(s) || !isHexDigit(s[i+1]) || !isHexDigit(s[i+2]) {
				return "", fmt.Errorf("bad \\x escape at offset %d", i-1)
			}
			b.WriteByte(hexDigitToInt(s[i+1])<<4 | hexDigitToInt(s[i+2]))
			i += 2
		default:
			return "", fmt.Errorf("unknown escape \\%c at offset %d", s[i], i-1)
		}
	}
	return b.String(), nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexDigitToInt(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	}
	return c - '0'
}
