package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/google/btree"
	"github.com/google/uuid"

	"github.com/davidvella/sortcheck/record"
	"github.com/davidvella/sortcheck/recordio"
)

// DefaultSeed matches the original pipeline's generator so that default
// runs are reproducible.
const DefaultSeed = 42

var ErrInvalidPayloadSize = errors.New("generator: payload size out of range")

// Options configures a generation run.
type Options struct {
	// Count is the number of records to write.
	Count int
	// PayloadSize fixes every payload to this many bytes; zero draws a
	// random size in [record.PayloadMin, record.PayloadMax] per record.
	PayloadSize int
	// Sorted writes records in ascending key order.
	Sorted bool
	// Seed drives key and size generation; zero means DefaultSeed.
	Seed int64
}

// Generate writes opts.Count random records to w and returns the number of
// bytes written. Keys and payload sizes are deterministic for a given seed;
// payload content is not.
func Generate(w io.Writer, opts Options) (int64, error) {
	if opts.PayloadSize != 0 && !record.ValidLength(uint32(opts.PayloadSize)) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPayloadSize, opts.PayloadSize)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	records := make([]record.Record, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		size := opts.PayloadSize
		if size == 0 {
			size = record.PayloadMin + rng.Intn(record.PayloadMax-record.PayloadMin+1)
		}
		records = append(records, record.Record{
			Key:     rng.Uint64(),
			Payload: payload(size),
		})
	}

	if opts.Sorted {
		records = sortRecords(records)
	}

	var total int64
	for _, rec := range records {
		n, err := recordio.Write(w, rec)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// sortRecords orders records ascending by key by passing them through a
// B-tree. Payload bytes break ties so duplicate keys are not collapsed.
func sortRecords(records []record.Record) []record.Record {
	tree := btree.NewG(2, func(a, b record.Record) bool {
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		return bytes.Compare(a.Payload, b.Payload) < 0
	})
	for _, rec := range records {
		tree.ReplaceOrInsert(rec)
	}

	sorted := make([]record.Record, 0, len(records))
	tree.Ascend(func(rec record.Record) bool {
		sorted = append(sorted, rec)
		return true
	})
	return sorted
}

// payload builds size bytes of printable content from uuid strings.
func payload(size int) []byte {
	b := make([]byte, 0, size+36)
	for len(b) < size {
		b = append(b, uuid.New().String()...)
	}
	return b[:size]
}
