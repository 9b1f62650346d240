// Package container reads and writes AUD/PNZ containers.
//
// A container is a 4-byte little-endian Adler-32 of the plaintext followed by
// the obfuscated payload. The checksum doubles as the keystream phase: decoding
// starts at checksum mod len(table).
//
// Decoding streams the input in BufferSize chunks but keeps the plaintext in
// memory until the checksum has been verified; nothing reaches a writer before
// that point.
package container
