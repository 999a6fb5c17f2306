package verify_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidvella/sortcheck/record"
	"github.com/davidvella/sortcheck/recordio"
	"github.com/davidvella/sortcheck/verify"
)

func writeFile(t *testing.T, name string, records ...record.Record) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	for _, rec := range records {
		_, err := recordio.Write(f, rec)
		require.NoError(t, err)
	}
	require.NoError(t, f.Close())
	return path
}

func pad(s string) []byte {
	b := []byte(s)
	for len(b) < record.PayloadMin {
		b = append(b, '.')
	}
	return b
}

func TestCheckSorted(t *testing.T) {
	tests := []struct {
		name string
		keys []uint64
		want *verify.Inversion
	}{
		{name: "empty", keys: nil, want: nil},
		{name: "single", keys: []uint64{9}, want: nil},
		{name: "ascending", keys: []uint64{1, 2, 3}, want: nil},
		{name: "duplicates are valid", keys: []uint64{1, 1, 2, 2}, want: nil},
		{
			name: "inversion",
			keys: []uint64{1, 3, 2},
			want: &verify.Inversion{Index: 2, Prev: 3, Key: 2},
		},
		{
			name: "first inversion wins",
			keys: []uint64{5, 4, 3},
			want: &verify.Inversion{Index: 1, Prev: 5, Key: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]record.Record, 0, len(tt.keys))
			for _, k := range tt.keys {
				records = append(records, record.Record{Key: k})
			}
			assert.Equal(t, tt.want, verify.CheckSorted(records))
		})
	}
}

func TestFile(t *testing.T) {
	t.Run("sorted file", func(t *testing.T) {
		path := writeFile(t, "sorted.bin",
			record.Record{Key: 1, Payload: pad("a")},
			record.Record{Key: 2, Payload: pad("b")},
			record.Record{Key: 2, Payload: pad("c")},
		)
		report := verify.File(path)
		assert.True(t, report.OK())
		assert.Equal(t, 3, report.Records)
		assert.Empty(t, report.Warnings)
	})

	t.Run("unsorted file", func(t *testing.T) {
		path := writeFile(t, "unsorted.bin",
			record.Record{Key: 7, Payload: pad("a")},
			record.Record{Key: 3, Payload: pad("b")},
		)
		report := verify.File(path)
		assert.False(t, report.OK())
		require.NotNil(t, report.Inversion)
		assert.Equal(t, 1, report.Inversion.Index)
		assert.Equal(t, uint64(7), report.Inversion.Prev)
		assert.Equal(t, uint64(3), report.Inversion.Key)
	})

	t.Run("empty file", func(t *testing.T) {
		report := verify.File(writeFile(t, "empty.bin"))
		assert.True(t, report.OK())
		assert.Zero(t, report.Records)
	})

	t.Run("missing file", func(t *testing.T) {
		report := verify.File(filepath.Join(t.TempDir(), "nope.bin"))
		assert.False(t, report.OK())
		assert.ErrorIs(t, report.Err, os.ErrNotExist)
	})

	t.Run("read failure yields zero records", func(t *testing.T) {
		report := verify.File(t.TempDir())
		assert.False(t, report.OK())
		assert.Error(t, report.Err)
		assert.Zero(t, report.Records)
	})

	t.Run("truncated trailing record warns", func(t *testing.T) {
		path := writeFile(t, "trunc.bin",
			record.Record{Key: 1, Payload: pad("a")},
			record.Record{Key: 2, Payload: pad("b")},
		)
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.NoError(t, os.Truncate(path, info.Size()-1))

		report := verify.File(path)
		assert.True(t, report.OK())
		assert.Equal(t, 1, report.Records)
		require.Len(t, report.Warnings, 1)
		assert.ErrorIs(t, report.Warnings[0].Err, recordio.ErrTruncated)
	})
}

func TestCompare(t *testing.T) {
	recA := record.Record{Key: 1, Payload: []byte("AAAAAAAA")}
	recB := record.Record{Key: 2, Payload: []byte("BBBBBBBB")}

	t.Run("identical files", func(t *testing.T) {
		a := writeFile(t, "a.bin", recA, recB)
		b := writeFile(t, "b.bin", recA, recB)
		report := verify.Compare(a, b)
		assert.True(t, report.OK())
		assert.Empty(t, report.Mismatches)
	})

	t.Run("file compared with itself", func(t *testing.T) {
		a := writeFile(t, "a.bin", recA, recB)
		report := verify.Compare(a, a)
		assert.True(t, report.OK())
	})

	t.Run("flipped payload byte reports one mismatch", func(t *testing.T) {
		flipped := record.Record{Key: 2, Payload: []byte("CBBBBBBB")}
		a := writeFile(t, "a.bin", recA, recB)
		b := writeFile(t, "b.bin", recA, flipped)

		report := verify.Compare(a, b)
		assert.False(t, report.OK())
		require.Len(t, report.Mismatches, 1)
		assert.Equal(t, 1, report.Mismatches[0].Index)
		assert.Equal(t, verify.FieldPayload, report.Mismatches[0].Field)
		assert.False(t, report.Truncated)
	})

	t.Run("key mismatch", func(t *testing.T) {
		a := writeFile(t, "a.bin", recA, recB)
		b := writeFile(t, "b.bin", recA, record.Record{Key: 3, Payload: []byte("BBBBBBBB")})

		report := verify.Compare(a, b)
		assert.False(t, report.OK())
		require.Len(t, report.Mismatches, 1)
		assert.Equal(t, verify.FieldKey, report.Mismatches[0].Field)
	})

	t.Run("count mismatch short-circuits", func(t *testing.T) {
		a := writeFile(t, "a.bin", recA, recB)
		b := writeFile(t, "b.bin", recA)

		report := verify.Compare(a, b)
		assert.False(t, report.OK())
		assert.True(t, report.CountMismatch)
		assert.Empty(t, report.Mismatches)
	})

	t.Run("missing file short-circuits", func(t *testing.T) {
		a := writeFile(t, "a.bin", recA)
		report := verify.Compare(a, filepath.Join(t.TempDir(), "nope.bin"))
		assert.False(t, report.OK())
		assert.ErrorIs(t, report.B.Err, os.ErrNotExist)
		assert.Zero(t, report.A.Records)
		assert.Empty(t, report.Mismatches)
	})

	t.Run("unsorted input fails before pairwise walk", func(t *testing.T) {
		a := writeFile(t, "a.bin", recB, recA)
		b := writeFile(t, "b.bin", recB, recA)

		report := verify.Compare(a, b)
		assert.False(t, report.OK())
		require.NotNil(t, report.A.Inversion)
		assert.Empty(t, report.Mismatches)
	})

	t.Run("reordered equal content still mismatches", func(t *testing.T) {
		first := record.Record{Key: 4, Payload: []byte("AAAAAAAA")}
		second := record.Record{Key: 4, Payload: []byte("BBBBBBBB")}
		a := writeFile(t, "a.bin", first, second)
		b := writeFile(t, "b.bin", second, first)

		report := verify.Compare(a, b)
		assert.False(t, report.OK())
		assert.Len(t, report.Mismatches, 2)
	})

	t.Run("mismatch cap stops the walk", func(t *testing.T) {
		var recordsA, recordsB []record.Record
		for i := 0; i < 20; i++ {
			recordsA = append(recordsA, record.Record{Key: uint64(i), Payload: []byte("AAAAAAAA")})
			recordsB = append(recordsB, record.Record{Key: uint64(i), Payload: []byte("BBBBBBBB")})
		}
		a := writeFile(t, "a.bin", recordsA...)
		b := writeFile(t, "b.bin", recordsB...)

		report := verify.Compare(a, b)
		assert.False(t, report.OK())
		assert.Len(t, report.Mismatches, verify.MaxMismatches+1)
		assert.True(t, report.Truncated)
	})
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "key", verify.FieldKey.String())
	assert.Equal(t, "payload", verify.FieldPayload.String())
	assert.Equal(t, "unknown", verify.Field(9).String())
}
