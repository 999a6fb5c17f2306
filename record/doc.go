// Package record defines the record type shared by the reader, the verifier
// and the generator: an 8-byte unsigned key and an opaque payload of 8 to
// 4096 bytes.
package record
