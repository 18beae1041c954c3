// Package msgpack implements a pull decoder for MessagePack streams on top of
// the parse library. Elements are decoded one at a time without validating
// container nesting.
package msgpack

import (
	"errors"
	"unicode/utf8"

	"github.com/parsekit/parsekit/parse"
	"github.com/parsekit/parsekit/parse/slice"
)

// Decoding failures reported by Next.
var (
	ErrNoNextElement   = errors.New("no next element")
	ErrNotEnoughData   = errors.New("not enough data")
	ErrReservedElement = errors.New("reserved element 0xc1")
	ErrInvalidUTF8     = errors.New("invalid utf-8 in string")
)

// Decoder pulls MessagePack elements off an in-memory byte stream.
type Decoder struct {
	driver   *parse.Driver[struct{}]
	position slice.BytePos
}

// NewDecoder creates a decoder positioned at the start of the provided data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		driver:   parse.NewDriver(),
		position: slice.New(data),
	}
}

// Offset reports how many bytes the decoder has consumed.
func (decoder *Decoder) Offset() int {
	return decoder.position.Position()
}

// Exhausted reports whether the input has been fully consumed.
func (decoder *Decoder) Exhausted() bool {
	return len(decoder.position.Rest) == 0
}

// Next decodes the next element. It fails with ErrNoNextElement at the end of
// the input; any other failure leaves the decoder positioned at the start of
// the offending element.
func (decoder *Decoder) Next() (Element, error) {
	progress := parseElement(decoder.driver, decoder.position)
	if progress.Err != nil {
		return Element{}, progress.Err
	}
	decoder.position = progress.Pos
	return progress.Value, nil
}

type elementProgress = parse.Progress[slice.BytePos, Element]

func parseElement(driver *parse.Driver[struct{}], startPosition slice.BytePos) elementProgress {
	firstByteProgress := startPosition.Take1()
	if firstByteProgress.Err != nil {
		return parse.Failure[slice.BytePos, Element](startPosition, ErrNoNextElement)
	}

	position := firstByteProgress.Pos
	firstByte := firstByteProgress.Value

	switch {
	case firstByte>>7 == 0:
		return parse.Success(position, Element{Kind: KindUint, Uint: uint64(firstByte)})
	case firstByte>>4 == 0b1000:
		return parse.Success(position, Element{Kind: KindMapHeader, Length: uint32(firstByte & 0b0000_1111)})
	case firstByte>>4 == 0b1001:
		return parse.Success(position, Element{Kind: KindArrayHeader, Length: uint32(firstByte & 0b0000_1111)})
	case firstByte>>5 == 0b101:
		return parseString(position, startPosition, int(firstByte&0b0001_1111))
	case firstByte>>5 == 0b111:
		// negative fixint is the two's-complement value of the byte itself
		return parse.Success(position, Element{Kind: KindInt, Int: int64(int8(firstByte))})
	}

	switch firstByte {
	case 0xC0:
		return parse.Success(position, Element{Kind: KindNil})
	case 0xC1:
		return parse.Failure[slice.BytePos, Element](startPosition, ErrReservedElement)
	case 0xC2:
		return parse.Success(position, Element{Kind: KindBool, Bool: false})
	case 0xC3:
		return parse.Success(position, Element{Kind: KindBool, Bool: true})

	case 0xC4, 0xC5, 0xC6:
		lengthProgress := parseLength(driver, position, firstByte-0xC4)
		if lengthProgress.Err != nil {
			return parse.Failure[slice.BytePos, Element](startPosition, ErrNotEnoughData)
		}
		return parseBinary(lengthProgress.Pos, startPosition, lengthProgress.Value)

	case 0xC7, 0xC8, 0xC9:
		lengthProgress := parseLength(driver, position, firstByte-0xC7)
		if lengthProgress.Err != nil {
			return parse.Failure[slice.BytePos, Element](startPosition, ErrNotEnoughData)
		}
		return parseExt(driver, lengthProgress.Pos, startPosition, lengthProgress.Value)

	case 0xCA:
		floatProgress := slice.Float32BE(driver, position)
		if floatProgress.Err != nil {
			return parse.Failure[slice.BytePos, Element](startPosition, ErrNotEnoughData)
		}
		return parse.Success(floatProgress.Pos, Element{Kind: KindFloat32, Float: float64(floatProgress.Value)})
	case 0xCB:
		floatProgress := slice.Float64BE(driver, position)
		if floatProgress.Err != nil {
			return parse.Failure[slice.BytePos, Element](startPosition, ErrNotEnoughData)
		}
		return parse.Success(floatProgress.Pos, Element{Kind: KindFloat64, Float: floatProgress.Value})

	case 0xCC:
		return mapUintProgress(startPosition, parse.Map(position.Take1(), func(value byte) uint64 { return uint64(value) }))
	case 0xCD:
		return mapUintProgress(startPosition, parse.Map(slice.Uint16BE(driver, position), func(value uint16) uint64 { return uint64(value) }))
	case 0xCE:
		return mapUintProgress(startPosition, parse.Map(slice.Uint32BE(driver, position), func(value uint32) uint64 { return uint64(value) }))
	case 0xCF:
		return mapUintProgress(startPosition, slice.Uint64BE(driver, position))

	case 0xD0:
		return mapIntProgress(startPosition, parse.Map(slice.Int8(driver, position), func(value int8) int64 { return int64(value) }))
	case 0xD1:
		return mapIntProgress(startPosition, parse.Map(slice.Int16BE(driver, position), func(value int16) int64 { return int64(value) }))
	case 0xD2:
		return mapIntProgress(startPosition, parse.Map(slice.Int32BE(driver, position), func(value int32) int64 { return int64(value) }))
	case 0xD3:
		return mapIntProgress(startPosition, slice.Int64BE(driver, position))

	case 0xD4:
		return parseExt(driver, position, startPosition, 1)
	case 0xD5:
		return parseExt(driver, position, startPosition, 2)
	case 0xD6:
		return parseExt(driver, position, startPosition, 4)
	case 0xD7:
		return parseExt(driver, position, startPosition, 8)
	case 0xD8:
		return parseExt(driver, position, startPosition, 16)

	case 0xD9, 0xDA, 0xDB:
		lengthProgress := parseLength(driver, position, firstByte-0xD9)
		if lengthProgress.Err != nil {
			return parse.Failure[slice.BytePos, Element](startPosition, ErrNotEnoughData)
		}
		return parseString(lengthProgress.Pos, startPosition, lengthProgress.Value)

	case 0xDC:
		return mapHeaderProgress(driver, position, startPosition, KindArrayHeader, 2)
	case 0xDD:
		return mapHeaderProgress(driver, position, startPosition, KindArrayHeader, 4)
	case 0xDE:
		return mapHeaderProgress(driver, position, startPosition, KindMapHeader, 2)
	case 0xDF:
		return mapHeaderProgress(driver, position, startPosition, KindMapHeader, 4)
	}

	// every byte value is covered by the ranges and cases above
	return parse.Failure[slice.BytePos, Element](startPosition, ErrReservedElement)
}

// parseLength reads an 8-, 16-, or 32-bit big-endian length prefix selected
// by widthSelector (0, 1, or 2).
func parseLength(driver *parse.Driver[struct{}], position slice.BytePos, widthSelector byte) parse.Progress[slice.BytePos, int] {
	switch widthSelector {
	case 0:
		return parse.Map(position.Take1(), func(value byte) int { return int(value) })
	case 1:
		return parse.Map(slice.Uint16BE(driver, position), func(value uint16) int { return int(value) })
	default:
		return parse.Map(slice.Uint32BE(driver, position), func(value uint32) int { return int(value) })
	}
}

func parseString(position slice.BytePos, startPosition slice.BytePos, length int) elementProgress {
	if length == 0 {
		return parse.Success(position, Element{Kind: KindString})
	}

	dataProgress := position.Take(length)
	if dataProgress.Err != nil {
		return parse.Failure[slice.BytePos, Element](startPosition, ErrNotEnoughData)
	}
	if !utf8.Valid(dataProgress.Value) {
		return parse.Failure[slice.BytePos, Element](startPosition, ErrInvalidUTF8)
	}
	return parse.Success(dataProgress.Pos, Element{Kind: KindString, Str: string(dataProgress.Value)})
}

func parseBinary(position slice.BytePos, startPosition slice.BytePos, length int) elementProgress {
	if length == 0 {
		return parse.Success(position, Element{Kind: KindBinary, Bytes: []byte{}})
	}

	dataProgress := position.Take(length)
	if dataProgress.Err != nil {
		return parse.Failure[slice.BytePos, Element](startPosition, ErrNotEnoughData)
	}
	return parse.Success(dataProgress.Pos, Element{Kind: KindBinary, Bytes: dataProgress.Value})
}

func parseExt(driver *parse.Driver[struct{}], position slice.BytePos, startPosition slice.BytePos, length int) elementProgress {
	extTypeProgress := slice.Int8(driver, position)
	if extTypeProgress.Err != nil {
		return parse.Failure[slice.BytePos, Element](startPosition, ErrNotEnoughData)
	}

	dataProgress := extTypeProgress.Pos.Take(length)
	if dataProgress.Err != nil {
		return parse.Failure[slice.BytePos, Element](startPosition, ErrNotEnoughData)
	}
	return parse.Success(dataProgress.Pos, Element{Kind: KindExt, ExtType: extTypeProgress.Value, Bytes: dataProgress.Value})
}

func mapHeaderProgress(driver *parse.Driver[struct{}], position slice.BytePos, startPosition slice.BytePos, headerKind Kind, width int) elementProgress {
	lengthProgress := parseLength(driver, position, byte(width/2))
	if lengthProgress.Err != nil {
		return parse.Failure[slice.BytePos, Element](startPosition, ErrNotEnoughData)
	}
	return parse.Success(lengthProgress.Pos, Element{Kind: headerKind, Length: uint32(lengthProgress.Value)})
}

func mapUintProgress(startPosition slice.BytePos, progress parse.Progress[slice.BytePos, uint64]) elementProgress {
	if progress.Err != nil {
		return parse.Failure[slice.BytePos, Element](startPosition, ErrNotEnoughData)
	}
	return parse.Success(progress.Pos, Element{Kind: KindUint, Uint: progress.Value})
}

func mapIntProgress(startPosition slice.BytePos, progress parse.Progress[slice.BytePos, int64]) elementProgress {
	if progress.Err != nil {
		return parse.Failure[slice.BytePos, Element](startPosition, ErrNotEnoughData)
	}
	return parse.Success(progress.Pos, Element{Kind: KindInt, Int: progress.Value})
}
