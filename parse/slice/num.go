package slice

import (
	"encoding/binary"
	"math"

	"github.com/parsekit/parsekit/parse"
)

// Fixed-width numeric readers over byte input. Each reader consumes exactly
// the width of its type, failing with ErrNotEnoughData without consuming when
// the input is too short.

// Uint8 reads a single unsigned byte.
func Uint8[S any](_ *parse.Driver[S], position BytePos) parse.Progress[BytePos, uint8] {
	return position.Take1()
}

// Int8 reads a single signed byte.
func Int8[S any](_ *parse.Driver[S], position BytePos) parse.Progress[BytePos, int8] {
	return parse.Map(position.Take1(), func(value byte) int8 { return int8(value) })
}

// Uint16BE reads a big-endian uint16.
func Uint16BE[S any](_ *parse.Driver[S], position BytePos) parse.Progress[BytePos, uint16] {
	return parse.Map(position.Take(2), binary.BigEndian.Uint16)
}

// Uint16LE reads a little-endian uint16.
func Uint16LE[S any](_ *parse.Driver[S], position BytePos) parse.Progress[BytePos, uint16] {
	return parse.Map(position.Take(2), binary.LittleEndian.Uint16)
}

// Uint32BE reads a big-endian uint32.
func Uint32BE[S any](_ *parse.Driver[S], position BytePos) parse.Progress[BytePos, uint32] {
	return parse.Map(position.Take(4), binary.BigEndian.Uint32)
}

// Uint32LE reads a little-endian uint32.
func Uint32LE[S any](_ *parse.Driver[S], position BytePos) parse.Progress[BytePos, uint32] {
	return parse.Map(position.Take(4), binary.LittleEndian.Uint32)
}

// Uint64BE reads a big-endian uint64.
func Uint64BE[S any](_ *parse.Driver[S], position BytePos) parse.Progress[BytePos, uint64] {
	return parse.Map(position.Take(8), binary.BigEndian.Uint64)
}

// Uint64LE reads a little-endian uint64.
func Uint64LE[S any](_ *parse.Driver[S], position BytePos) parse.Progress[BytePos, uint64] {
	return parse.Map(position.Take(8), binary.LittleEndian.Uint64)
}

// Int16BE reads a big-endian int16.
func Int16BE[S any](driver *parse.Driver[S], position BytePos) parse.Progress[BytePos, int16] {
	return parse.Map(Uint16BE(driver, position), func(value uint16) int16 { return int16(value) })
}

// Int16LE reads a little-endian int16.
func Int16LE[S any](driver *parse.Driver[S], position BytePos) parse.Progress[BytePos, int16] {
	return parse.Map(Uint16LE(driver, position), func(value uint16) int16 { return int16(value) })
}

// Int32BE reads a big-endian int32.
func Int32BE[S any](driver *parse.Driver[S], position BytePos) parse.Progress[BytePos, int32] {
	return parse.Map(Uint32BE(driver, position), func(value uint32) int32 { return int32(value) })
}

// Int32LE reads a little-endian int32.
func Int32LE[S any](driver *parse.Driver[S], position BytePos) parse.Progress[BytePos, int32] {
	return parse.Map(Uint32LE(driver, position), func(value uint32) int32 { return int32(value) })
}

// Int64BE reads a big-endian int64.
func Int64BE[S any](driver *parse.Driver[S], position BytePos) parse.Progress[BytePos, int64] {
	return parse.Map(Uint64BE(driver, position), func(value uint64) int64 { return int64(value) })
}

// Int64LE reads a little-endian int64.
func Int64LE[S any](driver *parse.Driver[S], position BytePos) parse.Progress[BytePos, int64] {
	return parse.Map(Uint64LE(driver, position), func(value uint64) int64 { return int64(value) })
}

// Float32BE reads a big-endian IEEE 754 single-precision float.
func Float32BE[S any](driver *parse.Driver[S], position BytePos) parse.Progress[BytePos, float32] {
	return parse.Map(Uint32BE(driver, position), math.Float32frombits)
}

// Float32LE reads a little-endian IEEE 754 single-precision float.
func Float32LE[S any](driver *parse.Driver[S], position BytePos) parse.Progress[BytePos, float32] {
	return parse.Map(Uint32LE(driver, position), math.Float32frombits)
}

// Float64BE reads a big-endian IEEE 754 double-precision float.
func Float64BE[S any](driver *parse.Driver[S], position BytePos) parse.Progress[BytePos, float64] {
	return parse.Map(Uint64BE(driver, position), math.Float64frombits)
}

// Float64LE reads a little-endian IEEE 754 double-precision float.
func Float64LE[S any](driver *parse.Driver[S], position BytePos) parse.Progress[BytePos, float64] {
	return parse.Map(Uint64LE(driver, position), math.Float64frombits)
}
