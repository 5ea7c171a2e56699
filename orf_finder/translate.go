package orf_finder

import (
	"strings"

	"orf_buddy_go/gencode"
)

// Translate reads dna in frame from offset 0 and returns its protein under
// table, stopping before the first stop codon. Codons the table does not
// know become gencode.Unknown; a trailing partial codon is ignored.
func Translate(dna string, table gencode.Table) string {
	var protein strings.Builder
	protein.Grow(len(dna) / codonLen)

	for i := 0; i+codonLen <= len(dna); i += codonLen {
		aa := table.Residue(dna[i : i+codonLen])
		if aa == gencode.Stop {
			break
		}
		protein.WriteByte(aa)
	}
	return protein.String()
}
