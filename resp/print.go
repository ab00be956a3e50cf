package resp

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"
)

// Printer renders decoded values for humans. The zero value prints
// payloads in full.
type Printer struct {
	// MaxWidth elides string payloads so that a printed line stays within
	// this many bytes. Zero disables eliding.
	MaxWidth int
}

// Fprint writes v as an indented tree, one node per line.
func Fprint(w io.Writer, v Value) error {
	return Printer{}.Fprint(w, v)
}

func (p Printer) Fprint(w io.Writer, v Value) error {
	var b strings.Builder
	p.printNode(&b, v, "")
	_, err := io.WriteString(w, b.String())
	return err
}

func (p Printer) printNode(b *strings.Builder, node Value, indent string) {
	switch n := node.(type) {
	case SimpleString:
		p.line(b, indent, "SimpleString: ", n.Value, false)
	case SimpleError:
		p.line(b, indent, "SimpleError: ", n.Message, false)
	case Integer:
		b.WriteString(indent + "Integer: " + strconv.FormatInt(n.Value, 10) + "\n")
	case BulkString:
		p.line(b, indent, "BulkString: ", n.Value, true)
	case NullBulkString:
		b.WriteString(indent + "NullBulkString\n")
	case Array:
		b.WriteString(indent + "Array:\n")
		for _, elem := range n.Elements {
			p.printNode(b, elem, indent+"  ")
		}
	case NullArray:
		b.WriteString(indent + "NullArray\n")
	case Null:
		b.WriteString(indent + "Null\n")
	case Boolean:
		if n.Value {
			b.WriteString(indent + "Boolean: true\n")
		} else {
			b.WriteString(indent + "Boolean: false\n")
		}
	case Double:
		b.WriteString(indent + "Double: " + formatDouble(n.Value) + "\n")
	case BigNumber:
		b.WriteString(indent + "BigNumber: " + n.Value + "\n")
	case BulkError:
		p.line(b, indent, "BulkError: ", n.Message, true)
	case VerbatimString:
		p.line(b, indent, "VerbatimString ("+n.Encoding+"): ", n.Data, true)
	case Map:
		b.WriteString(indent + "Map:\n")
		for _, pair := range n.Pairs {
			b.WriteString(indent + "  Key:\n")
			p.printNode(b, pair.Key, indent+"    ")
			b.WriteString(indent + "  Value:\n")
			p.printNode(b, pair.Value, indent+"    ")
		}
	case Set:
		b.WriteString(indent + "Set:\n")
		for _, elem := range n.Elements {
			p.printNode(b, elem, indent+"  ")
		}
	case Push:
		b.WriteString(indent + "Push:\n")
		for _, elem := range n.Elements {
			p.printNode(b, elem, indent+"  ")
		}
	case Inline:
		args := make([]string, len(n.Args))
		for i, arg := range n.Args {
			args[i] = strconv.Quote(arg)
		}
		b.WriteString(indent + "Inline: " + strings.Join(args, " ") + "\n")
	default:
		b.WriteString(indent + "Unknown\n")
	}
}

func (p Printer) line(b *strings.Builder, indent, label, payload string, quote bool) {
	if p.MaxWidth > 0 {
		limit := p.MaxWidth - len(indent) - len(label)
		if limit < 8 {
			limit = 8
		}
		if len(payload) > limit {
			payload = payload[:limit-3] + "..."
		}
	}
	if quote {
		payload = strconv.Quote(payload)
	}
	b.WriteString(indent + label + payload + "\n")
}

// FprintRaw writes v the way redis-cli --raw does: scalars verbatim, one
// per line, aggregates flattened and nulls as empty lines.
func FprintRaw(w io.Writer, v Value) error {
	var b strings.Builder
	printRaw(&b, v)
	_, err := io.WriteString(w, b.String())
	return err
}

func printRaw(b *strings.Builder, node Value) {
	switch n := node.(type) {
	case SimpleString:
		b.WriteString(n.Value + "\n")
	case SimpleError:
		b.WriteString(n.Message + "\n")
	case Integer:
		b.WriteString(strconv.FormatInt(n.Value, 10) + "\n")
	case BulkString:
		b.WriteString(n.Value + "\n")
	case NullBulkString, NullArray, Null:
		b.WriteString("\n")
	case Boolean:
		if n.Value {
			b.WriteString("(true)\n")
		} else {
			b.WriteString("(false)\n")
		}
	case Double:
		b.WriteString(formatDouble(n.Value) + "\n")
	case BigNumber:
		b.WriteString(n.Value + "\n")
	case BulkError:
		b.WriteString(n.Message + "\n")
	case VerbatimString:
		b.WriteString(n.Data + "\n")
	case Array:
		for _, elem := range n.Elements {
			printRaw(b, elem)
		}
	case Set:
		for _, elem := range n.Elements {
			printRaw(b, elem)
		}
	case Push:
		for _, elem := range n.Elements {
			printRaw(b, elem)
		}
	case Map:
		for _, pair := range n.Pairs {
			printRaw(b, pair.Key)
			printRaw(b, pair.Value)
		}
	case Inline:
		b.WriteString(strings.Join(n.Args, " ") + "\n")
	}
}

// FprintJSON writes v as a single line of JSON. Maps whose keys are all
// strings become objects with keys in wire order; other maps become arrays
// of [key, value] pairs. Errors become {"error": message}.
func FprintJSON(w io.Writer, v Value) error {
	var b strings.Builder
	printJSON(&b, v)
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func printJSON(b *strings.Builder, node Value) {
	switch n := node.(type) {
	case SimpleString:
		writeJSONString(b, n.Value)
	case BulkString:
		writeJSONString(b, n.Value)
	case VerbatimString:
		writeJSONString(b, n.Data)
	case BigNumber:
		writeJSONString(b, n.Value)
	case SimpleError:
		writeJSONError(b, n.Message)
	case BulkError:
		writeJSONError(b, n.Message)
	case Integer:
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case Double:
		if math.IsInf(n.Value, 0) || math.IsNaN(n.Value) {
			writeJSONString(b, formatDouble(n.Value))
		} else {
			b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
		}
	case Boolean:
		b.WriteString(strconv.FormatBool(n.Value))
	case NullBulkString, NullArray, Null:
		b.WriteString("null")
	case Array:
		writeJSONArray(b, n.Elements)
	case Set:
		writeJSONArray(b, n.Elements)
	case Push:
		writeJSONArray(b, n.Elements)
	case Inline:
		b.WriteString("[")
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteString(",")
			}
			writeJSONString(b, arg)
		}
		b.WriteString("]")
	case Map:
		if keys, ok := stringKeys(n); ok {
			b.WriteString("{")
			for i, pair := range n.Pairs {
				if i > 0 {
					b.WriteString(",")
				}
				writeJSONString(b, keys[i])
				b.WriteString(":")
				printJSON(b, pair.Value)
			}
			b.WriteString("}")
			return
		}
		b.WriteString("[")
		for i, pair := range n.Pairs {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString("[")
			printJSON(b, pair.Key)
			b.WriteString(",")
			printJSON(b, pair.Value)
			b.WriteString("]")
		}
		b.WriteString("]")
	default:
		b.WriteString("null")
	}
}

func writeJSONArray(b *strings.Builder, elems []Value) {
	b.WriteString("[")
	for i, elem := range elems {
		if i > 0 {
			b.WriteString(",")
		}
		printJSON(b, elem)
	}
	b.WriteString("]")
}

func writeJSONError(b *strings.Builder, msg string) {
	b.WriteString(`{"error":`)
	writeJSONString(b, msg)
	b.WriteString("}")
}

func writeJSONString(b *strings.Builder, s string) {
	out, _ := json.Marshal(s)
	b.Write(out)
}

func stringKeys(m Map) ([]string, bool) {
	keys := make([]string, len(m.Pairs))
	for i, pair := range m.Pairs {
		switch k := pair.Key.(type) {
		case SimpleString:
			keys[i] = k.Value
		case BulkString:
			keys[i] = k.Value
		case VerbatimString:
			keys[i] = k.Data
		default:
			return nil, false
		}
	}
	return keys, true
}

// formatDouble spells non-finite values the way RESP3 does.
func formatDouble(d float64) string {
	switch {
	case math.IsInf(d, 1):
		return "inf"
	case math.IsInf(d, -1):
		return "-inf"
	case math.IsNaN(d):
		return "nan"
	}
	return strconv.FormatFloat(d, 'g', -1, 64)
}
