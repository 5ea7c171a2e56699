// Package gencode stores the NCBI numbered genetic codes and maps
// codons to amino acid residues under a selected table.
//
// Tables are built once from the NCBI 64-letter residue strings and are
// safe for concurrent use.
package gencode

import (
	"errors"
	"fmt"
	"sort"
)

const (
	Stop         byte = '*' // residue for a stop codon
	Unknown      byte = 'X' // residue for a codon outside the table
	DefaultTable      = 11  // Bacterial, Archaeal and Plant Plastid
)

var ErrUnknownTable = errors.New("unknown genetic code table")

// Table is the codon lookup used by the translator. Implementations must
// return Unknown for any codon they cannot classify.
type Table interface {
	ID() int
	Name() string
	Residue(codon string) byte
	IsStop(codon string) bool
	IsStart(codon string) bool
}

type ncbiTable struct {
	id       int
	name     string
	residues string
	starts   string
}

var builtin = func() map[int]*ncbiTable {
	m := make(map[int]*ncbiTable, len(ncbiResidues))
	for id, res := range ncbiResidues {
		m[id] = &ncbiTable{
			id:       id,
			name:     ncbiNames[id],
			residues: res,
			starts:   ncbiStarts[id],
		}
	}
	return m
}()

// Lookup returns the built-in table with the given NCBI id.
func Lookup(id int) (Table, error) {
	t, ok := builtin[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTable, id)
	}
	return t, nil
}

// Tables lists the supported table ids in ascending order.
func Tables() []int {
	ids := make([]int, 0, len(builtin))
	for id := range builtin {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (t *ncbiTable) ID() int      { return t.id }
func (t *ncbiTable) Name() string { return t.name }

func (t *ncbiTable) Residue(codon string) byte {
	idx := codonIndex(codon)
	if idx < 0 {
		return Unknown
	}
	return t.residues[idx]
}

func (t *ncbiTable) IsStop(codon string) bool {
	return t.Residue(codon) == Stop
}

func (t *ncbiTable) IsStart(codon string) bool {
	idx := codonIndex(codon)
	return idx >= 0 && t.starts[idx] == 'M'
}

// codonIndex converts a codon to its position in the TCAG-ordered table,
// or -1 when the codon has the wrong length or a base outside ACGT/U.
func codonIndex(codon string) int {
	if len(codon) != 3 {
		return -1
	}
	idx := 0
	for i := 0; i < 3; i++ {
		v := baseValue(codon[i])
		if v < 0 {
			return -1
		}
		idx = idx*4 + v
	}
	return idx
}

func baseValue(b byte) int {
	switch b {
	case 'T', 't', 'U', 'u':
		return 0
	case 'C', 'c':
		return 1
	case 'A', 'a':
		return 2
	case 'G', 'g':
		return 3
	}
	return -1
}
