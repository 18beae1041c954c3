package slice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parsekit/parsekit/parse"
	"github.com/parsekit/parsekit/parse/slice"
)

func numericTestInput() []byte {
	return []byte{0x01, 0x02, 0x03, 0x04, 0xD0, 0x0D, 0xF0, 0x0D}
}

func TestUnsignedBigEndianReaders(testInstance *testing.T) {
	driver := parse.NewDriver()
	startPosition := slice.New(numericTestInput())

	uint8Progress := slice.Uint8(driver, startPosition)
	require.NoError(testInstance, uint8Progress.Err)
	require.Equal(testInstance, uint8(0x01), uint8Progress.Value)
	require.Equal(testInstance, 1, uint8Progress.Pos.Position())

	uint16Progress := slice.Uint16BE(driver, startPosition)
	require.NoError(testInstance, uint16Progress.Err)
	require.Equal(testInstance, uint16(0x0102), uint16Progress.Value)
	require.Equal(testInstance, 2, uint16Progress.Pos.Position())

	uint32Progress := slice.Uint32BE(driver, startPosition)
	require.NoError(testInstance, uint32Progress.Err)
	require.Equal(testInstance, uint32(0x01020304), uint32Progress.Value)
	require.Equal(testInstance, 4, uint32Progress.Pos.Position())

	uint64Progress := slice.Uint64BE(driver, startPosition)
	require.NoError(testInstance, uint64Progress.Err)
	require.Equal(testInstance, uint64(0x01020304D00DF00D), uint64Progress.Value)
	require.Equal(testInstance, 8, uint64Progress.Pos.Position())
}

func TestUnsignedLittleEndianReaders(testInstance *testing.T) {
	driver := parse.NewDriver()
	startPosition := slice.New(numericTestInput())

	uint16Progress := slice.Uint16LE(driver, startPosition)
	require.NoError(testInstance, uint16Progress.Err)
	require.Equal(testInstance, uint16(0x0201), uint16Progress.Value)

	uint32Progress := slice.Uint32LE(driver, startPosition)
	require.NoError(testInstance, uint32Progress.Err)
	require.Equal(testInstance, uint32(0x04030201), uint32Progress.Value)

	uint64Progress := slice.Uint64LE(driver, startPosition)
	require.NoError(testInstance, uint64Progress.Err)
	require.Equal(testInstance, uint64(0x0DF00DD004030201), uint64Progress.Value)
}

func TestSignedReadersReinterpretBitPatterns(testInstance *testing.T) {
	driver := parse.NewDriver()
	startPosition := slice.New(numericTestInput()).AdvanceBy(4)

	int8Progress := slice.Int8(driver, startPosition)
	require.NoError(testInstance, int8Progress.Err)
	require.Equal(testInstance, int8(-48), int8Progress.Value)

	int16Progress := slice.Int16BE(driver, startPosition)
	require.NoError(testInstance, int16Progress.Err)
	require.Equal(testInstance, int16(0xD00D-0x10000), int16Progress.Value)

	int32Progress := slice.Int32BE(driver, startPosition)
	require.NoError(testInstance, int32Progress.Err)
	require.Equal(testInstance, int32(0xD00DF00D-0x100000000), int32Progress.Value)

	int64FullProgress := slice.Int64BE(driver, slice.New(numericTestInput()))
	require.NoError(testInstance, int64FullProgress.Err)
	require.Equal(testInstance, int64(0x01020304D00DF00D), int64FullProgress.Value)
}

func TestFloatReadersDecodeBitPatterns(testInstance *testing.T) {
	driver := parse.NewDriver()

	float32Position := slice.New([]byte{0x40, 0x49, 0x0F, 0xDB})
	float32Progress := slice.Float32BE(driver, float32Position)
	require.NoError(testInstance, float32Progress.Err)
	require.InDelta(testInstance, 3.14159274, float64(float32Progress.Value), 1e-6)

	float64Position := slice.New([]byte{0x40, 0x09, 0x21, 0xFB, 0x54, 0x44, 0x2D, 0x18})
	float64Progress := slice.Float64BE(driver, float64Position)
	require.NoError(testInstance, float64Progress.Err)
	require.InDelta(testInstance, 3.141592653589793, float64Progress.Value, 1e-12)

	float32LittleEndianPosition := slice.New([]byte{0xDB, 0x0F, 0x49, 0x40})
	float32LittleEndianProgress := slice.Float32LE(driver, float32LittleEndianPosition)
	require.NoError(testInstance, float32LittleEndianProgress.Err)
	require.Equal(testInstance, float32Progress.Value, float32LittleEndianProgress.Value)
}

func TestNumericReadersFailWithoutConsumingOnShortInput(testInstance *testing.T) {
	driver := parse.NewDriver()
	startPosition := slice.New([]byte{0x01, 0x02})

	uint32Progress := slice.Uint32BE(driver, startPosition)
	require.ErrorIs(testInstance, uint32Progress.Err, slice.ErrNotEnoughData)
	require.Equal(testInstance, 0, uint32Progress.Pos.Position())

	uint64Progress := slice.Uint64LE(driver, startPosition)
	require.ErrorIs(testInstance, uint64Progress.Err, slice.ErrNotEnoughData)
	require.Equal(testInstance, 0, uint64Progress.Pos.Position())
}
