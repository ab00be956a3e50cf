package resp

import (
	"errors"
	"strconv"
	"strings"
)

// RESP3 protocol decoder.
// https://github.com/redis/redis-specifications/blob/master/protocol/RESP3.md

// Types introduced by RESP3
const (
	TypeNull      Type = '_'
	TypeDouble    Type = ','
	TypeBoolean   Type = '#'
	TypeBlobError Type = '!'
	TypeVerbatim  Type = '='
	TypeMap       Type = '%'
	TypeSet       Type = '~'
	TypePush      Type = '>'
	TypeBignum    Type = '('
)

// ErrInvalid is returned by Decode for any input that is not a valid frame.
var ErrInvalid = errors.New("resp: invalid frame")

// Null is the RESP3 null.
type Null struct{}

type Boolean struct {
	Value bool
}

type Double struct {
	Value float64
}

// BigNumber holds the decimal digits verbatim. A leading '+' is dropped,
// a leading '-' is kept.
type BigNumber struct {
	Value string
}

type BulkError struct {
	Message string
}

type VerbatimString struct {
	Encoding string
	Data     string
}

// Pair is one key/value entry of a Map.
type Pair struct {
	Key   Value
	Value Value
}

// Map keeps pairs in wire order.
type Map struct {
	Pairs []Pair
}

// Set keeps elements in wire order; duplicates are not removed.
type Set struct {
	Elements []Value
}

// Push is an out-of-band message. It is only valid as a top-level value.
type Push struct {
	Elements []Value
}

func (Null) Type() Type           { return TypeNull }
func (Boolean) Type() Type        { return TypeBoolean }
func (Double) Type() Type         { return TypeDouble }
func (BigNumber) Type() Type      { return TypeBignum }
func (BulkError) Type() Type      { return TypeBlobError }
func (VerbatimString) Type() Type { return TypeVerbatim }
func (Map) Type() Type            { return TypeMap }
func (Set) Type() Type            { return TypeSet }
func (Push) Type() Type           { return TypePush }

func (Null) value()           {}
func (Boolean) value()        {}
func (Double) value()         {}
func (BigNumber) value()      {}
func (BulkError) value()      {}
func (VerbatimString) value() {}
func (Map) value()            {}
func (Set) value()            {}
func (Push) value()           {}

// Parse decodes the first value in data. Anything after that value is
// ignored. The boolean is false when data does not start with a valid frame;
// no reason is given.
func Parse(data string) (Value, bool) {
	v, _, ok := ParsePrefix(data)
	return v, ok
}

// ParsePrefix is like Parse but also reports how many bytes of data the
// value occupied, so that a buffer holding several complete frames can be
// walked one frame at a time. An inline command always consumes the rest
// of data.
func ParsePrefix(data string) (Value, int, bool) {
	v, remaining, ok := parseRESP(data, false)
	if !ok {
		return nil, 0, false
	}
	return v, len(data) - len(remaining), true
}

// Decode is Parse with the failure reported as ErrInvalid.
func Decode(data string) (Value, error) {
	v, ok := Parse(data)
	if !ok {
		return nil, ErrInvalid
	}
	return v, nil
}

// parseRESP decodes one value from the front of data and returns it along
// with the unconsumed input. nested is set for every call made on behalf of
// an enclosing aggregate.
func parseRESP(data string, nested bool) (Value, string, bool) {
	if len(data) == 0 {
		return nil, data, false
	}

	tag, rest := Type(data[0]), data[1:]
	switch tag {
	case TypeSimple:
		line, remaining, ok := readLine(rest)
		if !ok {
			return nil, data, false
		}
		return SimpleString{Value: line}, remaining, true

	case TypeError:
		line, remaining, ok := readLine(rest)
		if !ok {
			return nil, data, false
		}
		return SimpleError{Message: line}, remaining, true

	case TypeInteger:
		line, remaining, ok := readLine(rest)
		if !ok {
			return nil, data, false
		}
		num, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, data, false
		}
		return Integer{Value: num}, remaining, true

	case TypeDouble:
		line, remaining, ok := readLine(rest)
		if !ok {
			return nil, data, false
		}
		d, ok := parseDouble(line)
		if !ok {
			return nil, data, false
		}
		return Double{Value: d}, remaining, true

	case TypeBignum:
		line, remaining, ok := readLine(rest)
		if !ok {
			return nil, data, false
		}
		num, ok := parseBigNumber(line)
		if !ok {
			return nil, data, false
		}
		return BigNumber{Value: num}, remaining, true

	case TypeNull:
		line, remaining, ok := readLine(rest)
		if !ok || line != "" {
			return nil, data, false
		}
		return Null{}, remaining, true

	case TypeBoolean:
		line, remaining, ok := readLine(rest)
		if !ok {
			return nil, data, false
		}
		switch line {
		case "t":
			return Boolean{Value: true}, remaining, true
		case "f":
			return Boolean{Value: false}, remaining, true
		}
		return nil, data, false

	case TypeBlob:
		length, remaining, ok := readLength(rest)
		if !ok || length < -1 {
			return nil, data, false
		}
		if length == -1 {
			return NullBulkString{}, remaining, true
		}
		payload, remaining, ok := readBlob(remaining, length)
		if !ok {
			return nil, data, false
		}
		return BulkString{Value: payload}, remaining, true

	case TypeBlobError:
		length, remaining, ok := readLength(rest)
		if !ok || length < 0 {
			return nil, data, false
		}
		payload, remaining, ok := readBlob(remaining, length)
		if !ok {
			return nil, data, false
		}
		return BulkError{Message: payload}, remaining, true

	case TypeVerbatim:
		// The payload is "xxx:<data>": a 3 byte encoding, a colon, then data.
		length, remaining, ok := readLength(rest)
		if !ok || length < 4 {
			return nil, data, false
		}
		payload, remaining, ok := readBlob(remaining, length)
		if !ok || strings.IndexByte(payload, ':') != 3 {
			return nil, data, false
		}
		return VerbatimString{Encoding: payload[:3], Data: payload[4:]}, remaining, true

	case TypeArray:
		count, remaining, ok := readLength(rest)
		if !ok || count < -1 {
			return nil, data, false
		}
		if count == -1 {
			return NullArray{}, remaining, true
		}
		elements, remaining, ok := parseElements(remaining, count)
		if !ok {
			return nil, data, false
		}
		return Array{Elements: elements}, remaining, true

	case TypeSet:
		count, remaining, ok := readLength(rest)
		if !ok || count < 0 {
			return nil, data, false
		}
		elements, remaining, ok := parseElements(remaining, count)
		if !ok {
			return nil, data, false
		}
		return Set{Elements: elements}, remaining, true

	case TypePush:
		if nested {
			return nil, data, false
		}
		count, remaining, ok := readLength(rest)
		if !ok || count < 0 {
			return nil, data, false
		}
		elements, remaining, ok := parseElements(remaining, count)
		if !ok {
			return nil, data, false
		}
		return Push{Elements: elements}, remaining, true

	case TypeMap:
		count, remaining, ok := readLength(rest)
		if !ok || count < 0 {
			return nil, data, false
		}
		pairs := make([]Pair, 0, capFor(count, len(remaining)/2))
		for i := int64(0); i < count; i++ {
			var key, val Value
			if key, remaining, ok = parseRESP(remaining, true); !ok {
				return nil, data, false
			}
			if val, remaining, ok = parseRESP(remaining, true); !ok {
				return nil, data, false
			}
			pairs = append(pairs, Pair{Key: key, Value: val})
		}
		return Map{Pairs: pairs}, remaining, true

	default:
		// Not a type tag: the whole input, tag byte included, is an inline
		// command.
		args := strings.Fields(data)
		if len(args) == 0 {
			return nil, data, false
		}
		return Inline{Args: args}, "", true
	}
}

// parseElements decodes exactly count nested values.
func parseElements(data string, count int64) ([]Value, string, bool) {
	elements := make([]Value, 0, capFor(count, len(data)))
	remaining := data
	for i := int64(0); i < count; i++ {
		var (
			elem Value
			ok   bool
		)
		if elem, remaining, ok = parseRESP(remaining, true); !ok {
			return nil, data, false
		}
		elements = append(elements, elem)
	}
	return elements, remaining, true
}

// capFor bounds a preallocation by what the remaining input could hold,
// every element taking at least one byte.
func capFor(count int64, limit int) int {
	if count > int64(limit) {
		return limit
	}
	return int(count)
}

// readLine returns the text up to the first CR LF. A CR or LF that is not
// part of a CR LF pair fails the read.
func readLine(data string) (string, string, bool) {
	i := strings.IndexAny(data, "\r\n")
	if i < 0 || data[i] != '\r' || i+1 >= len(data) || data[i+1] != '\n' {
		return "", data, false
	}
	return data[:i], data[i+2:], true
}

// readLength reads a signed decimal length or count line.
func readLength(data string) (int64, string, bool) {
	line, remaining, ok := readLine(data)
	if !ok {
		return 0, data, false
	}
	n, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, data, false
	}
	return n, remaining, true
}

// readBlob reads exactly length bytes followed by CR LF. The payload itself
// may contain CR and LF.
func readBlob(data string, length int64) (string, string, bool) {
	if len(data) < 2 || length > int64(len(data)-2) {
		return "", data, false
	}
	end := int(length)
	if data[end:end+2] != CRLF {
		return "", data, false
	}
	return data[:end], data[end+2:], true
}

// parseDouble accepts decimal notation with an optional sign and exponent
// in either case, and inf, +inf, -inf and nan in any letter case.
func parseDouble(s string) (float64, bool) {
	if strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	// Out of range magnitudes saturate to ±Inf or 0 rather than failing.
	d, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return d, true
}

// parseBigNumber validates an optionally signed run of ASCII digits.
func parseBigNumber(s string) (string, bool) {
	digits := s
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		digits = s[1:]
	}
	if len(digits) == 0 {
		return "", false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", false
		}
	}
	if s[0] == '+' {
		return digits, true
	}
	return s, true
}
