// Package batch runs decode and encode jobs over many files.
//
// Every file is an independent job on a bounded worker pool. Jobs share only
// the read-only key table; a failing job is reported and counted but never
// stops its siblings. Outputs are written through a temp file and renamed
// into place only after the payload has been verified.
package batch
