package orf_finder

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Total         int
	Forward       int
	Reverse       int
	LongestLength int
	LongestStart  int
	LongestEnd    int
	LongestStrand Strand
	FrameCounts   map[string]int // keyed "+0".."-2"
	MeanLength    float64
	StdDevLength  float64
	MedianLength  float64
}

// Summarize tallies strand and frame usage and the length distribution.
func Summarize(orfs []ORF) Summary {
	s := Summary{FrameCounts: make(map[string]int)}
	if len(orfs) == 0 {
		return s
	}

	lengths := make([]float64, len(orfs))
	for i, o := range orfs {
		s.Total++
		if o.Strand == Plus {
			s.Forward++
		} else {
			s.Reverse++
		}
		s.FrameCounts[fmt.Sprintf("%s%d", o.Strand, o.Frame)]++

		if o.Length > s.LongestLength {
			s.LongestLength = o.Length
			s.LongestStart = o.Start
			s.LongestEnd = o.End
			s.LongestStrand = o.Strand
		}
		lengths[i] = float64(o.Length)
	}

	sort.Float64s(lengths)
	s.MeanLength = stat.Mean(lengths, nil)
	if len(lengths) > 1 {
		s.StdDevLength = stat.StdDev(lengths, nil)
	}
	s.MedianLength = stat.Quantile(0.5, stat.Empirical, lengths, nil)
	return s
}

// WriteSummary prints s in the same plain layout the other tools use.
func WriteSummary(w io.Writer, s Summary) {
	fmt.Fprintln(w, "\n=== ORF Summary ===")
	fmt.Fprintf(w, "Total ORFs: %d\n", s.Total)
	fmt.Fprintf(w, "  Forward strand: %d\n", s.Forward)
	fmt.Fprintf(w, "  Reverse strand: %d\n", s.Reverse)
	if s.Total == 0 {
		return
	}
	fmt.Fprintf(w, "Longest ORF: %d bp (%d-%d, %s)\n", s.LongestLength, s.LongestStart, s.LongestEnd, s.LongestStrand)
	fmt.Fprintf(w, "Mean ORF length: %.1f bp (sd %.1f)\n", s.MeanLength, s.StdDevLength)
	fmt.Fprintf(w, "Median ORF length: %.0f bp\n", s.MedianLength)
	fmt.Fprintln(w, "Frame usage:")

	keys := make([]string, 0, len(s.FrameCounts))
	for k := range s.FrameCounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %d\n", k, s.FrameCounts[k])
	}
}
