package ran_dna_gen

import (
	"bufio"
	"compress/gzip"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/ulikunitz/xz"
)

var ErrGCBias = errors.New("GC bias must be between 0.0 and 1.0")

// RandSeq generates a random DNA sequence of the given length and GC bias
// (0.0 to 1.0) drawing from r, so a fixed seed reproduces the same sequence.
func RandSeq(r *rand.Rand, seqLength int, gcBias float64) (string, error) {
	if gcBias < 0.0 || gcBias > 1.0 {
		return "", ErrGCBias
	}
	if seqLength < 0 {
		return "", fmt.Errorf("length must not be negative, got %d", seqLength)
	}

	cWeight := gcBias / 2
	aWeight := (1 - gcBias) / 2
	tWeight := (1 - gcBias) / 2

	seq := make([]byte, seqLength)
	for i := range seq {
		x := r.Float64()
		switch {
		case x < aWeight:
			seq[i] = 'A'
		case x < aWeight+tWeight:
			seq[i] = 'T'
		case x < aWeight+tWeight+cWeight:
			seq[i] = 'C'
		default:
			seq[i] = 'G'
		}
	}
	return string(seq), nil
}

// WriteFasta writes one record with the sequence wrapped every width characters.
func WriteFasta(w io.Writer, name, seq string, width int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, ">%s\n", name)
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		bw.WriteString(seq[i:end])
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// compressor wraps w for the requested output compression ("", "gzip", "xz").
func compressor(w io.Writer, kind string) (io.WriteCloser, string, error) {
	switch kind {
	case "":
		return nopCloser{w}, "", nil
	case "gzip":
		return gzip.NewWriter(w), ".gz", nil
	case "xz":
		xw, err := xz.NewWriter(w)
		if err != nil {
			return nil, "", err
		}
		return xw, ".xz", nil
	}
	return nil, "", fmt.Errorf("unknown compression %q (use gzip or xz)", kind)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// WriteFile writes a single-record FASTA to path, compressed when kind is
// "gzip" or "xz", and returns the final path including the suffix.
func WriteFile(path, kind, name, seq string) (string, error) {
	_, suffix, err := compressor(io.Discard, kind)
	if err != nil {
		return "", err
	}
	outputPath := path + suffix

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	cw, _, err := compressor(file, kind)
	if err != nil {
		return "", err
	}
	if err := WriteFasta(cw, name, seq, 60); err != nil {
		cw.Close()
		return "", fmt.Errorf("error writing sequence: %w", err)
	}
	if err := cw.Close(); err != nil {
		return "", fmt.Errorf("error finishing compressed stream: %w", err)
	}
	return outputPath, file.Close()
}

func Run(args []string) {
	fs := flag.NewFlagSet("ran_dna_gen", flag.ExitOnError)

	length := fs.Int("length", 100, "Length of generated DNA sequence")
	gc := fs.Float64("gc_bias", 0.5, "GC bias (0.0-1.0)")
	seed := fs.Int64("seed", 0, "Seed for RNG (0 picks a time-based seed)")
	outFile := fs.String("out_file", "", "Output FASTA file (default is stdout)")
	name := fs.String("name", "random_seq", "Sequence name (FASTA header)")
	compress := fs.String("compress", "", "Compress output file: gzip or xz")

	if err := fs.Parse(args); err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(*seed))

	sequence, err := RandSeq(r, *length, *gc)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if *outFile == "" {
		if *compress != "" {
			fmt.Fprintln(os.Stderr, "Cannot compress to stdout directly. Please specify an output file.")
			os.Exit(1)
		}
		if err := WriteFasta(os.Stdout, *name, sequence, 60); err != nil {
			fmt.Println("Error writing sequence:", err)
			os.Exit(1)
		}
		return
	}

	path, err := WriteFile(*outFile, *compress, *name, sequence)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("Wrote sequence to %s\n", path)
}
