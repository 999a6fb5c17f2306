// Package recordio implements the binary record format produced by the
// sorting pipeline: a fixed 12-byte header (8-byte little-endian key,
// 4-byte little-endian payload length) followed by the payload bytes, with
// no file-level framing.
//
// Basic usage:
//
//	// Writing a record
//	rec := record.Record{Key: 42, Payload: []byte("AAAAAAAA")}
//
//	var buf bytes.Buffer
//	n, err := recordio.Write(&buf, rec)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Reading records back
//	r := recordio.NewReader(&buf)
//	for rec := range r.All() {
//	    fmt.Printf("key=%d len=%d\n", rec.Key, len(rec.Payload))
//	}
//	for _, w := range r.Warnings() {
//	    fmt.Println(w)
//	}
//
// The Reader is deliberately lenient: records with an out-of-range length
// are skipped (header only) with a warning, and a truncated trailing record
// is dropped with a warning. Only genuine read failures surface via Err.
package recordio
