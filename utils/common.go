// Common package contains commonly used functions that benefit multiple tools
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"errors"
	"fmt"
)

// ErrInvalidSequence is returned when a sequence holds a symbol outside A, C, G, T.
var ErrInvalidSequence = errors.New("invalid nucleotide sequence")

// InvalidSequenceError reports the first offending symbol and its 0-based position.
type InvalidSequenceError struct {
	Pos    int
	Symbol byte
}

func (e *InvalidSequenceError) Error() string {
	return fmt.Sprintf("%v: symbol %q at position %d", ErrInvalidSequence, e.Symbol, e.Pos)
}

func (e *InvalidSequenceError) Unwrap() error { return ErrInvalidSequence }

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = 'N' // Ambiguous or invalid character
	}
	complement['A'], complement['a'] = 'T', 'T'
	complement['T'], complement['t'] = 'A', 'A'
	complement['C'], complement['c'] = 'G', 'G'
	complement['G'], complement['g'] = 'C', 'C'
}

// ReverseComplement returns the reverse complement of a DNA sequence.
// The function is case-insensitive and always returns uppercase.
// Non-standard DNA characters are replaced with the ambiguous base 'N'.
func ReverseComplement(seq string) string {
	n := len(seq)
	rc := make([]byte, n)
	for i := 0; i < n; i++ {
		rc[i] = complement[seq[n-1-i]]
	}
	return string(rc)
}

// NormalizeSequence uppercases seq and rejects the whole input if any
// symbol falls outside A, C, G, T. An empty sequence is valid.
func NormalizeSequence(seq string) (string, error) {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		b := seq[i]
		switch b {
		case 'A', 'C', 'G', 'T':
		case 'a', 'c', 'g', 't':
			b -= 'a' - 'A'
		default:
			return "", &InvalidSequenceError{Pos: i, Symbol: seq[i]}
		}
		out[i] = b
	}
	return string(out), nil
}
