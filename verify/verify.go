package verify

import (
	"bytes"
	"fmt"
	"os"

	"github.com/davidvella/sortcheck/record"
	"github.com/davidvella/sortcheck/recordio"
)

// MaxMismatches bounds how many mismatches a comparison reports. Once more
// than this many have been recorded the walk stops early; the cap bounds
// output volume, not the verdict.
const MaxMismatches = 10

// Inversion is the first order violation found in a sequence.
type Inversion struct {
	Index int
	Prev  uint64
	Key   uint64
}

// FileReport is the outcome of reading and checking a single file.
type FileReport struct {
	Path      string
	Records   int
	Warnings  []recordio.Warning
	Inversion *Inversion
	Err       error
}

// Sorted reports whether the file's keys were non-decreasing.
func (r FileReport) Sorted() bool {
	return r.Inversion == nil
}

// OK reports overall success for a single-file check.
func (r FileReport) OK() bool {
	return r.Err == nil && r.Sorted()
}

// Field identifies which part of a record pair disagreed.
type Field int

const (
	FieldKey Field = iota
	FieldPayload
)

func (f Field) String() string {
	switch f {
	case FieldKey:
		return "key"
	case FieldPayload:
		return "payload"
	default:
		return "unknown"
	}
}

// Mismatch is one position at which two compared files disagree.
type Mismatch struct {
	Index int
	Field Field
	A, B  record.Record
}

// CompareReport is the outcome of a two-file comparison.
type CompareReport struct {
	A, B          FileReport
	CountMismatch bool
	Mismatches    []Mismatch
	// Truncated is set when the walk stopped at the mismatch cap.
	Truncated bool
}

// OK reports overall success: both files readable, both sorted, equal
// record counts and no mismatches.
func (r CompareReport) OK() bool {
	return r.A.OK() && r.B.OK() && !r.CountMismatch && len(r.Mismatches) == 0
}

// CheckSorted returns the first inversion in records, or nil when keys are
// non-decreasing. Equal adjacent keys are valid. The scan stops at the
// first violation.
func CheckSorted(records []record.Record) *Inversion {
	for i := 1; i < len(records); i++ {
		if records[i].Less(records[i-1]) {
			return &Inversion{Index: i, Prev: records[i-1].Key, Key: records[i].Key}
		}
	}
	return nil
}

// File verifies that a single file's records are sorted by key.
func File(path string) FileReport {
	report := FileReport{Path: path}

	records, warnings, err := readFile(path)
	report.Warnings = warnings
	if err != nil {
		report.Err = err
		return report
	}

	report.Records = len(records)
	report.Inversion = CheckSorted(records)
	return report
}

// Compare verifies that both files exist, are independently sorted, and
// contain the same sequence of records. Comparison is strictly positional:
// the walk is in lock-step by index, a key mismatch or a byte-level payload
// mismatch counts as one mismatch at that index.
func Compare(pathA, pathB string) CompareReport {
	report := CompareReport{
		A: FileReport{Path: pathA},
		B: FileReport{Path: pathB},
	}

	for _, fr := range []*FileReport{&report.A, &report.B} {
		if _, err := os.Stat(fr.Path); err != nil {
			fr.Err = fmt.Errorf("cannot access %s: %w", fr.Path, err)
		}
	}
	if report.A.Err != nil || report.B.Err != nil {
		return report
	}

	recordsA, warningsA, errA := readFile(pathA)
	report.A.Warnings, report.A.Err = warningsA, errA
	recordsB, warningsB, errB := readFile(pathB)
	report.B.Warnings, report.B.Err = warningsB, errB

	report.A.Records = len(recordsA)
	report.B.Records = len(recordsB)

	if report.A.Records != report.B.Records {
		report.CountMismatch = true
		return report
	}
	if report.A.Err != nil || report.B.Err != nil {
		return report
	}

	report.A.Inversion = CheckSorted(recordsA)
	if !report.A.Sorted() {
		return report
	}
	report.B.Inversion = CheckSorted(recordsB)
	if !report.B.Sorted() {
		return report
	}

	for i := range recordsA {
		a, b := recordsA[i], recordsB[i]
		switch {
		case a.Key != b.Key:
			report.Mismatches = append(report.Mismatches, Mismatch{Index: i, Field: FieldKey, A: a, B: b})
		case !bytes.Equal(a.Payload, b.Payload):
			report.Mismatches = append(report.Mismatches, Mismatch{Index: i, Field: FieldPayload, A: a, B: b})
		}
		if len(report.Mismatches) > MaxMismatches {
			report.Truncated = true
			break
		}
	}

	return report
}

// readFile materializes one file. A missing file or a read failure yields
// an empty sequence alongside the error.
func readFile(path string) ([]record.Record, []recordio.Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	r := recordio.NewReader(f)
	records := make([]record.Record, 0, 1)
	for rec := range r.All() {
		records = append(records, rec)
	}
	if err := r.Err(); err != nil {
		return nil, r.Warnings(), fmt.Errorf("error reading %s: %w", path, err)
	}
	return records, r.Warnings(), nil
}
