package record

// Payload length bounds enforced by the on-disk format.
const (
	PayloadMin = 8
	PayloadMax = 4096
)

// HeaderSize is the fixed per-record header: an 8-byte little-endian key
// followed by a 4-byte little-endian payload length.
const HeaderSize = 12

// Record is a single fixed-header, variable-payload unit.
type Record struct {
	Key     uint64
	Payload []byte
}

// Less orders records by key only. Payload bytes never participate in
// ordering, so records with equal keys compare equal in either direction.
func (r Record) Less(t Record) bool {
	return r.Key < t.Key
}

// Size returns the number of bytes the record occupies on disk.
func (r Record) Size() int64 {
	return HeaderSize + int64(len(r.Payload))
}

// ValidLength reports whether a decoded payload length is within bounds.
func ValidLength(length uint32) bool {
	return length >= PayloadMin && length <= PayloadMax
}
