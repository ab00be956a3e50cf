package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescape(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{`PING`, "PING"},
		{`+OK\r\n`, "+OK\r\n"},
		{`$3\r\na\tb\r\n`, "$3\r\na\tb\r\n"},
		{`\\ \" \'`, `\ " '`},
		{`\x41\x2a\xff`, "A*\xff"},
		{`\a\b`, "\a\b"},
	} {
		got, err := unescape(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.out, got, tc.in)
	}
}

func TestUnescapeRejected(t *testing.T) {
	for _, in := range []string{`\`, `abc\`, `\q`, `\x4`, `\xg1`, `\x`} {
		_, err := unescape(in)
		assert.Error(t, err, in)
	}
}
