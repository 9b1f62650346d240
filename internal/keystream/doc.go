// Package keystream implements the position-dependent byte transform used by
// AUD/PNZ containers.
//
// Each byte is XORed with the key byte under the cursor and then has its bit
// order reversed. The cursor advances by one per byte and wraps at the end of
// the table. Tables are immutable and safe for concurrent use; a Stream is not.
package keystream
