package orf_finder

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"orf_buddy_go/gencode"
	"orf_buddy_go/utils"
)

// FindAll scans seq on both strands in all three frames and returns every
// ORF of at least minLength bases, translated under table and sorted by
// (Start, Strand, Frame). seq is case-insensitive; any symbol outside
// A, C, G, T rejects the whole input with common.ErrInvalidSequence.
// A nil table selects gencode.DefaultTable.
func FindAll(seq string, minLength int, table gencode.Table) ([]ORF, error) {
	fwd, err := common.NormalizeSequence(seq)
	if err != nil {
		return nil, err
	}
	if table == nil {
		if table, err = gencode.Lookup(gencode.DefaultTable); err != nil {
			return nil, err
		}
	}

	genomeLen := len(fwd)
	rc := common.ReverseComplement(fwd)

	// One slot per strand/frame; each goroutine owns its slot.
	var plus, minus [codonLen][]ORF
	var g errgroup.Group
	for frame := 0; frame < codonLen; frame++ {
		frame := frame // per-iteration copy (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			orfs := ScanFrame(fwd, frame, minLength, Plus)
			for i := range orfs {
				orfs[i].Protein = Translate(orfs[i].DNA, table)
			}
			plus[frame] = orfs
			return nil
		})
		g.Go(func() error {
			orfs := ScanFrame(rc, frame, minLength, Minus)
			for i := range orfs {
				orfs[i] = remapMinus(orfs[i], fwd, genomeLen)
				orfs[i].Protein = Translate(orfs[i].DNA, table)
			}
			minus[frame] = orfs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []ORF
	for frame := 0; frame < codonLen; frame++ {
		all = append(all, plus[frame]...)
	}
	for frame := 0; frame < codonLen; frame++ {
		all = append(all, minus[frame]...)
	}
	SortORFs(all)
	return all, nil
}

// RemapCoords converts half-open coordinates between a sequence of length
// genomeLen and its reverse complement. Applying it twice is the identity.
func RemapCoords(start, end, genomeLen int) (int, int) {
	return genomeLen - end, genomeLen - start
}

// remapMinus moves a candidate found on the reverse complement onto forward
// coordinates and rebuilds its DNA from the forward slice.
func remapMinus(o ORF, fwd string, genomeLen int) ORF {
	o.Start, o.End = RemapCoords(o.Start, o.End, genomeLen)
	o.DNA = common.ReverseComplement(fwd[o.Start:o.End])
	return o
}

// SortORFs orders orfs by (Start, Strand, Frame) with '+' before '-'.
func SortORFs(orfs []ORF) {
	sort.SliceStable(orfs, func(i, j int) bool {
		a, b := orfs[i], orfs[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Strand != b.Strand {
			return a.Strand < b.Strand
		}
		return a.Frame < b.Frame
	})
}
