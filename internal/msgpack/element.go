package msgpack

import "fmt"

const (
	elementNilStringConstant           = "nil"
	elementBoolTemplateConstant        = "bool(%t)"
	elementUintTemplateConstant        = "uint(%d)"
	elementIntTemplateConstant         = "int(%d)"
	elementFloat32TemplateConstant     = "float32(%g)"
	elementFloat64TemplateConstant     = "float64(%g)"
	elementStringTemplateConstant      = "str(%q)"
	elementBinaryTemplateConstant      = "bin(%d bytes)"
	elementExtTemplateConstant         = "ext(type %d, %d bytes)"
	elementArrayHeaderTemplateConstant = "array(%d)"
	elementMapHeaderTemplateConstant   = "map(%d)"
	elementUnknownKindTemplateConstant = "unknown(%d)"
)

// Kind enumerates the element families a MessagePack stream can contain.
type Kind int

// Element kinds produced by the decoder.
const (
	KindNil Kind = iota
	KindBool
	KindUint
	KindInt
	KindFloat32
	KindFloat64
	KindString
	KindBinary
	KindExt
	KindArrayHeader
	KindMapHeader
)

// Element is one decoded MessagePack value. Array and map elements only carry
// their length header; the contained elements follow in the stream, matching
// the pull model of the decoder.
type Element struct {
	Kind    Kind
	Bool    bool
	Uint    uint64
	Int     int64
	Float   float64
	Str     string
	Bytes   []byte
	ExtType int8
	Length  uint32
}

// String renders the element for diagnostic output.
func (element Element) String() string {
	switch element.Kind {
	case KindNil:
		return elementNilStringConstant
	case KindBool:
		return fmt.Sprintf(elementBoolTemplateConstant, element.Bool)
	case KindUint:
		return fmt.Sprintf(elementUintTemplateConstant, element.Uint)
	case KindInt:
		return fmt.Sprintf(elementIntTemplateConstant, element.Int)
	case KindFloat32:
		return fmt.Sprintf(elementFloat32TemplateConstant, element.Float)
	case KindFloat64:
		return fmt.Sprintf(elementFloat64TemplateConstant, element.Float)
	case KindString:
		return fmt.Sprintf(elementStringTemplateConstant, element.Str)
	case KindBinary:
		return fmt.Sprintf(elementBinaryTemplateConstant, len(element.Bytes))
	case KindExt:
		return fmt.Sprintf(elementExtTemplateConstant, element.ExtType, len(element.Bytes))
	case KindArrayHeader:
		return fmt.Sprintf(elementArrayHeaderTemplateConstant, element.Length)
	case KindMapHeader:
		return fmt.Sprintf(elementMapHeaderTemplateConstant, element.Length)
	default:
		return fmt.Sprintf(elementUnknownKindTemplateConstant, element.Kind)
	}
}
