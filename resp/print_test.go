package resp

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() Value {
	return Array{Elements: []Value{
		SimpleString{Value: "Hello"},
		SimpleError{Message: "ERR oops"},
		Integer{Value: 42},
		BulkString{Value: "a\r\nb"},
		NullBulkString{},
		Double{Value: math.Inf(-1)},
		Boolean{Value: true},
		Map{Pairs: []Pair{
			{Key: SimpleString{Value: "k"}, Value: Set{Elements: []Value{BigNumber{Value: "-12"}}}},
		}},
		VerbatimString{Encoding: "txt", Data: "hi"},
	}}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, sampleTree()))

	expected := "Array:\n" +
		"  SimpleString: Hello\n" +
		"  SimpleError: ERR oops\n" +
		"  Integer: 42\n" +
		"  BulkString: \"a\\r\\nb\"\n" +
		"  NullBulkString\n" +
		"  Double: -inf\n" +
		"  Boolean: true\n" +
		"  Map:\n" +
		"    Key:\n" +
		"      SimpleString: k\n" +
		"    Value:\n" +
		"      Set:\n" +
		"        BigNumber: -12\n" +
		"  VerbatimString (txt): \"hi\"\n"
	assert.Equal(t, expected, buf.String())
}

func TestFprintPushAndInline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, Push{Elements: []Value{Null{}, NullArray{}}}))
	require.NoError(t, Fprint(&buf, Inline{Args: []string{"ECHO", "hello world"}}))

	assert.Equal(t, "Push:\n  Null\n  NullArray\nInline: \"ECHO\" \"hello world\"\n", buf.String())
}

func TestPrinterMaxWidth(t *testing.T) {
	var buf bytes.Buffer
	p := Printer{MaxWidth: 20}
	require.NoError(t, p.Fprint(&buf, SimpleString{Value: "abcdefghijklmnopqrstuvwxyz"}))

	// 20 - len("SimpleString: ") leaves 6, raised to the 8 byte floor.
	assert.Equal(t, "SimpleString: abcde...\n", buf.String())

	buf.Reset()
	require.NoError(t, p.Fprint(&buf, SimpleString{Value: "short"}))
	assert.Equal(t, "SimpleString: short\n", buf.String())
}

func TestFprintRaw(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintRaw(&buf, sampleTree()))

	expected := "Hello\n" +
		"ERR oops\n" +
		"42\n" +
		"a\r\nb\n" +
		"\n" +
		"-inf\n" +
		"(true)\n" +
		"k\n" +
		"-12\n" +
		"hi\n"
	assert.Equal(t, expected, buf.String())
}

func TestFprintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintJSON(&buf, sampleTree()))

	expected := `["Hello",{"error":"ERR oops"},42,"a\r\nb",null,"-inf",true,{"k":["-12"]},"hi"]` + "\n"
	assert.Equal(t, expected, buf.String())
}

func TestFprintJSONNonStringKeys(t *testing.T) {
	var buf bytes.Buffer
	m := Map{Pairs: []Pair{
		{Key: Integer{Value: 1}, Value: Double{Value: 1.5}},
		{Key: Null{}, Value: Inline{Args: []string{"PING"}}},
	}}
	require.NoError(t, FprintJSON(&buf, m))

	assert.Equal(t, `[[1,1.5],[null,["PING"]]]`+"\n", buf.String())
}

func TestFormatDouble(t *testing.T) {
	assert.Equal(t, "inf", formatDouble(math.Inf(1)))
	assert.Equal(t, "-inf", formatDouble(math.Inf(-1)))
	assert.Equal(t, "nan", formatDouble(math.NaN()))
	assert.Equal(t, "3.14159", formatDouble(3.14159))
	assert.Equal(t, "123", formatDouble(123))
}
