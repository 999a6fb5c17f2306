package recordio

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/davidvella/sortcheck/record"
)

// A Warning records a malformed region of a stream, identified by the byte
// offset of the offending record's header.
type Warning struct {
	Offset int64
	Err    error
}

func (w Warning) String() string {
	return fmt.Sprintf("warning: %v at offset %d", w.Err, w.Offset)
}

// Reader scans records from a stream while tolerating malformed input: a
// record whose declared length is out of range is skipped by discarding its
// header only, and a truncated trailing payload stops the scan. Both cases
// are collected as warnings rather than surfaced as errors.
type Reader struct {
	r        io.Reader
	offset   int64
	count    int
	warnings []Warning
	err      error
	done     bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// All iterates records in stream order. Iteration ends at the first
// incomplete header (normal end of stream), at a truncated payload, or at a
// read error; see Err for the latter. The iterator is single-use.
func (r *Reader) All() iter.Seq[record.Record] {
	return func(yield func(record.Record) bool) {
		for !r.done {
			start := r.offset
			rec, err := Read(r.r)
			switch {
			case err == nil:
				r.offset += rec.Size()
				r.count++
				if !yield(rec) {
					return
				}
			case errors.Is(err, io.EOF):
				r.done = true
			case errors.Is(err, ErrInvalidLength):
				// Header consumed, payload untouched: resume at the next
				// byte. Best effort; may cascade when payload boundaries
				// are lost.
				r.offset += record.HeaderSize
				r.warnings = append(r.warnings, Warning{Offset: start, Err: err})
			case errors.Is(err, ErrTruncated):
				r.warnings = append(r.warnings, Warning{Offset: start, Err: err})
				r.done = true
			default:
				r.err = err
				r.done = true
			}
		}
	}
}

// Warnings returns the malformed-record warnings collected so far.
func (r *Reader) Warnings() []Warning {
	return r.warnings
}

// Err returns the first read error encountered, if any. End of stream and
// malformed records are not errors.
func (r *Reader) Err() error {
	return r.err
}

// Count returns the number of records yielded so far.
func (r *Reader) Count() int {
	return r.count
}
