// Package audit implements the freqcheck audit log.
//
// Every frequency check is appended as one JSON object per line with the
// raw input, the decoded frequency, its spacing, the outcome and a stable
// result code. The file is rotated by size.
package audit
