package orf_finder

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

const faaLineWidth = 60

// WriteCSV writes one row per ORF with columns start,end,length,frame,strand,protein.
func WriteCSV(w io.Writer, orfs []ORF) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"start", "end", "length", "frame", "strand", "protein"}); err != nil {
		return err
	}
	for _, o := range orfs {
		row := []string{
			strconv.Itoa(o.Start),
			strconv.Itoa(o.End),
			strconv.Itoa(o.Length),
			strconv.Itoa(o.Frame),
			o.Strand.String(),
			o.Protein,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteGFF3 writes orfs as GFF3 features on seqID. GFF3 is 1-based with
// inclusive ends, so Start shifts by one and End stays as is.
func WriteGFF3(w io.Writer, seqID string, orfs []ORF) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "##gff-version 3")
	for i, o := range orfs {
		fmt.Fprintf(bw, "%s\torf_buddy\tORF\t%d\t%d\t.\t%s\t0\tID=orf%d;Length=%d;Frame=%d\n",
			seqID, o.Start+1, o.End, o.Strand, i+1, o.Length, o.Frame)
	}
	return bw.Flush()
}

// WriteFAA writes the translated proteins as FASTA, wrapped at 60 columns.
func WriteFAA(w io.Writer, seqID string, orfs []ORF) error {
	bw := bufio.NewWriter(w)
	for i, o := range orfs {
		fmt.Fprintf(bw, ">orf%d|%s:%d-%d [%s]\n", i+1, seqID, o.Start+1, o.End, o.Strand)

		prot := o.Protein
		for j := 0; j < len(prot); j += faaLineWidth {
			end := j + faaLineWidth
			if end > len(prot) {
				end = len(prot)
			}
			fmt.Fprintln(bw, prot[j:end])
		}
	}
	return bw.Flush()
}
