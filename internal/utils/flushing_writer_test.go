package utils_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parsekit/parsekit/internal/utils"
)

type flushRecordingWriter struct {
	buffer     bytes.Buffer
	flushCount int
}

func (writer *flushRecordingWriter) Write(data []byte) (int, error) {
	return writer.buffer.Write(data)
}

func (writer *flushRecordingWriter) Flush() error {
	writer.flushCount++
	return nil
}

func TestFlushingWriterFlushesAfterEachWrite(testInstance *testing.T) {
	recordingWriter := &flushRecordingWriter{}
	flushingWriter := utils.NewFlushingWriter(recordingWriter)

	writtenCount, writeError := flushingWriter.Write([]byte("payload"))

	require.NoError(testInstance, writeError)
	require.Equal(testInstance, len("payload"), writtenCount)
	require.Equal(testInstance, "payload", recordingWriter.buffer.String())
	require.Equal(testInstance, 1, recordingWriter.flushCount)
}

func TestFlushingWriterPassesThroughPlainWriters(testInstance *testing.T) {
	plainBuffer := &bytes.Buffer{}
	flushingWriter := utils.NewFlushingWriter(plainBuffer)

	_, writeError := flushingWriter.Write([]byte("payload"))

	require.NoError(testInstance, writeError)
	require.Equal(testInstance, "payload", plainBuffer.String())
}

func TestFlushingWriterDoesNotDoubleWrap(testInstance *testing.T) {
	plainBuffer := &bytes.Buffer{}
	wrappedOnce := utils.NewFlushingWriter(plainBuffer)

	require.Same(testInstance, wrappedOnce, utils.NewFlushingWriter(wrappedOnce))
}

func TestFlushingWriterToleratesNilWriter(testInstance *testing.T) {
	require.Nil(testInstance, utils.NewFlushingWriter(nil))
}
