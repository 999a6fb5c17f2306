package recordio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/davidvella/sortcheck/record"
)

var (
	// ErrInvalidLength reports a payload length outside
	// [record.PayloadMin, record.PayloadMax].
	ErrInvalidLength = errors.New("recordio: invalid payload length")
	// ErrTruncated reports a payload shorter than its declared length.
	ErrTruncated = errors.New("recordio: truncated payload")
)

// Write writes a single record to the writer and returns the number of
// bytes written.
func Write(w io.Writer, rec record.Record) (int64, error) {
	if !record.ValidLength(uint32(len(rec.Payload))) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, len(rec.Payload))
	}

	var header [record.HeaderSize]byte
	binary.LittleEndian.PutUint64(header[0:8], rec.Key)
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(rec.Payload)))

	n, err := w.Write(header[:])
	if err != nil {
		return int64(n), fmt.Errorf("error writing header: %w", err)
	}

	m, err := w.Write(rec.Payload)
	if err != nil {
		return int64(n + m), fmt.Errorf("error writing payload: %w", err)
	}

	return int64(n + m), nil
}

// Read reads a single record from the reader. It returns io.EOF when fewer
// than record.HeaderSize bytes remain, which is the normal end of a stream.
//
// On ErrInvalidLength the header has been consumed but the payload has not;
// the stream is positioned at the byte following the bad header.
func Read(r io.Reader) (record.Record, error) {
	var header [record.HeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return record.Record{}, io.EOF
		}
		return record.Record{}, err
	}

	key := binary.LittleEndian.Uint64(header[0:8])
	length := binary.LittleEndian.Uint32(header[8:12])

	if !record.ValidLength(length) {
		return record.Record{}, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return record.Record{}, fmt.Errorf("%w: declared %d bytes", ErrTruncated, length)
		}
		return record.Record{}, err
	}

	return record.Record{Key: key, Payload: payload}, nil
}

// ReadRecords reads all well-formed records into a slice, applying the
// Reader's skip and stop policy for malformed input.
func ReadRecords(r io.Reader) []record.Record {
	records := make([]record.Record, 0, 1)
	for rec := range NewReader(r).All() {
		records = append(records, rec)
	}
	return records
}
