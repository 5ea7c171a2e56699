package orf_finder

const (
	startCodon = "ATG"
	codonLen   = 3
)

type Strand byte

const (
	Plus  Strand = '+'
	Minus Strand = '-'
)

func (s Strand) String() string { return string(s) }

// ORF is one open reading frame in forward-genome coordinates.
// Start and End are 0-based and half-open; DNA is in coding orientation,
// so minus-strand ORFs hold the reverse complement of the forward slice.
type ORF struct {
	Start   int
	End     int
	Length  int
	Frame   int // scan offset on its own strand, 0..2
	Strand  Strand
	DNA     string
	Protein string
}

type codonKind int

const (
	neutral codonKind = iota
	start
	stop
)

func classify(codon string) codonKind {
	switch codon {
	case startCodon:
		return start
	case "TAA", "TAG", "TGA":
		return stop
	}
	return neutral
}

// scanState is the per-frame reading state: closed until a start codon
// opens a reading, open until the next in-frame stop closes it.
type scanState int

const (
	closed scanState = iota
	open
)

// ScanFrame walks seq codon by codon from offset frame and returns every
// ORF terminated by an in-frame stop whose length reaches minLength.
// Only the first start after a stop opens a reading; a reading still open
// at the end of seq is dropped. Coordinates are relative to seq and
// Protein is left empty.
func ScanFrame(seq string, frame, minLength int, strand Strand) []ORF {
	if frame < 0 || frame >= codonLen {
		return nil
	}

	var orfs []ORF
	state := closed
	openAt := 0

	for i := frame; i+codonLen <= len(seq); i += codonLen {
		switch classify(seq[i : i+codonLen]) {
		case stop:
			if state == open {
				end := i + codonLen
				if length := end - openAt; length >= minLength {
					orfs = append(orfs, ORF{
						Start:  openAt,
						End:    end,
						Length: length,
						Frame:  frame,
						Strand: strand,
						DNA:    seq[openAt:end],
					})
				}
			}
			state = closed // a stop always closes, even a too-short reading
		case start:
			if state == closed {
				state = open
				openAt = i
			}
		}
	}
	return orfs
}
