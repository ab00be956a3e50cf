package resp

const CRLF string = "\r\n"

// Type is the single-byte prefix that tags a value on the wire.
type Type byte

// Types equivalent to RESP version 2
const (
	TypeArray   Type = '*'
	TypeBlob    Type = '$'
	TypeSimple  Type = '+'
	TypeError   Type = '-'
	TypeInteger Type = ':'
)

// TypeInline marks a legacy inline command, which carries no tag.
const TypeInline Type = 0

var typeNames = map[Type]string{
	TypeArray:     "array",
	TypeBlob:      "bulk-string",
	TypeSimple:    "simple-string",
	TypeError:     "simple-error",
	TypeInteger:   "integer",
	TypeNull:      "null",
	TypeDouble:    "double",
	TypeBoolean:   "boolean",
	TypeBlobError: "bulk-error",
	TypeVerbatim:  "verbatim-string",
	TypeMap:       "map",
	TypeSet:       "set",
	TypePush:      "push",
	TypeBignum:    "big-number",
	TypeInline:    "inline",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Value is a decoded RESP value. The set of implementations is closed:
// only the types in this package satisfy it.
type Value interface {
	Type() Type
	value()
}

type SimpleString struct {
	Value string
}

type SimpleError struct {
	Message string
}

type Integer struct {
	Value int64
}

type BulkString struct {
	Value string
}

// NullBulkString is a bulk string sent with length -1.
type NullBulkString struct{}

// Array represents an array in RESP
type Array struct {
	Elements []Value
}

// NullArray is an array sent with length -1.
type NullArray struct{}

// Inline is a legacy command line split on whitespace.
type Inline struct {
	Args []string
}

func (SimpleString) Type() Type   { return TypeSimple }
func (SimpleError) Type() Type    { return TypeError }
func (Integer) Type() Type        { return TypeInteger }
func (BulkString) Type() Type     { return TypeBlob }
func (NullBulkString) Type() Type { return TypeBlob }
func (Array) Type() Type          { return TypeArray }
func (NullArray) Type() Type      { return TypeArray }
func (Inline) Type() Type         { return TypeInline }

func (SimpleString) value()   {}
func (SimpleError) value()    {}
func (Integer) value()        {}
func (BulkString) value()     {}
func (NullBulkString) value() {}
func (Array) value()          {}
func (NullArray) value()      {}
func (Inline) value()         {}
