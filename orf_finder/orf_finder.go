package orf_finder

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"orf_buddy_go/gencode"
	"orf_buddy_go/orf_store"
	"orf_buddy_go/utils"
)

// Options is the parsed orf_finder command line.
type Options struct {
	InFile    string
	MinLength int
	TableID   int
	OutPrefix string
	GFF       bool
	FAA       bool
	Hist      bool
	Summary   bool
	DBPath    string
}

func (o Options) validate() error {
	if o.InFile == "" {
		return fmt.Errorf("-in_file is required")
	}
	if o.MinLength < 1 {
		return fmt.Errorf("-min_length must be a positive integer, got %d", o.MinLength)
	}
	if o.OutPrefix == "" {
		return fmt.Errorf("-out must not be empty")
	}
	return nil
}

// Execute loads the first record of opts.InFile, finds its ORFs and writes
// every requested output. Progress lines go to stdout.
//
// The run is stored in opts.DBPath before any file is written, so a database
// failure leaves no output files behind. A later file error can still leave
// the stored run and the files written so far.
func Execute(opts Options, stdout io.Writer) error {
	if err := opts.validate(); err != nil {
		return err
	}
	table, err := gencode.Lookup(opts.TableID)
	if err != nil {
		return err
	}

	record, err := common.LoadFirstFasta(opts.InFile)
	if err != nil {
		return fmt.Errorf("failed to read FASTA: %w", err)
	}
	orfs, err := FindAll(record.Sequence, opts.MinLength, table)
	if err != nil {
		return fmt.Errorf("%s: %w", record.ID, err)
	}
	genomeLen := len(record.Sequence)

	var written []string

	digest := common.SequenceDigest(record.Sequence)
	if opts.DBPath != "" {
		runID, err := saveRun(opts, record.ID, digest, genomeLen, orfs)
		if err != nil {
			return err
		}
		written = append(written, fmt.Sprintf("%s (run %s)", opts.DBPath, runID))
	}

	if err := os.MkdirAll(filepath.Dir(opts.OutPrefix), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	csvPath := opts.OutPrefix + ".csv"
	if err := writeFile(csvPath, func(w io.Writer) error { return WriteCSV(w, orfs) }); err != nil {
		return err
	}
	written = append(written, csvPath)

	if opts.Hist {
		pngPath := opts.OutPrefix + "_length_hist.png"
		if err := WriteLengthHistogram(pngPath, orfs, opts.MinLength); err != nil {
			return err
		}
		written = append(written, pngPath)
	}
	if opts.GFF {
		gffPath := opts.OutPrefix + ".gff3"
		if err := writeFile(gffPath, func(w io.Writer) error { return WriteGFF3(w, record.ID, orfs) }); err != nil {
			return err
		}
		written = append(written, gffPath)
	}
	if opts.FAA {
		faaPath := opts.OutPrefix + ".faa"
		if err := writeFile(faaPath, func(w io.Writer) error { return WriteFAA(w, record.ID, orfs) }); err != nil {
			return err
		}
		written = append(written, faaPath)
	}

	fmt.Fprintf(stdout, "Loaded %s\n", record.ID)
	fmt.Fprintf(stdout, "Genome length: %d bp\n", genomeLen)
	fmt.Fprintf(stdout, "Sequence digest (BLAKE3): %s\n", digest)
	fmt.Fprintf(stdout, "Translation table: %d (%s)\n", table.ID(), table.Name())
	fmt.Fprintf(stdout, "Found %d ORFs (min_length=%d)\n", len(orfs), opts.MinLength)
	for _, path := range written {
		fmt.Fprintf(stdout, "Wrote %s\n", path)
	}
	if opts.Summary {
		WriteSummary(stdout, Summarize(orfs))
	}
	return nil
}

func saveRun(opts Options, seqID, digest string, genomeLen int, orfs []ORF) (string, error) {
	store, err := orf_store.Open(opts.DBPath)
	if err != nil {
		return "", err
	}
	defer store.Close()

	run := orf_store.Run{
		SeqID:     seqID,
		SeqDigest: digest,
		GenomeLen: genomeLen,
		MinLength: opts.MinLength,
		TableID:   opts.TableID,
	}
	runID, err := store.SaveRun(context.Background(), run, ToRecords(orfs))
	if err != nil {
		return "", fmt.Errorf("failed to store run: %w", err)
	}
	return runID, nil
}

// ToRecords converts ORFs to their stored form.
func ToRecords(orfs []ORF) []orf_store.Record {
	recs := make([]orf_store.Record, len(orfs))
	for i, o := range orfs {
		recs[i] = orf_store.Record{
			Start:   o.Start,
			End:     o.End,
			Length:  o.Length,
			Frame:   o.Frame,
			Strand:  o.Strand.String(),
			DNA:     o.DNA,
			Protein: o.Protein,
		}
	}
	return recs
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func printTables(w io.Writer) {
	fmt.Fprintln(w, "Available translation tables:")
	for _, id := range gencode.Tables() {
		t, _ := gencode.Lookup(id)
		fmt.Fprintf(w, "  %2d  %s\n", id, t.Name())
	}
}

func Run(args []string) {
	fs := flag.NewFlagSet("orf_finder", flag.ExitOnError)

	inputFile := fs.String("in_file", "", "Input FASTA file (plain, gzip or xz); only the first record is scanned")
	minLen := fs.Int("min_length", 100, "Minimum ORF length (bp)")
	table := fs.Int("table", gencode.DefaultTable, "Translation table (default 11 for bacteria/E. coli)")
	out := fs.String("out", "results/orfs", "Output prefix")
	gff := fs.Bool("gff", false, "Also write <out>.gff3")
	faa := fs.Bool("faa", false, "Also write translated proteins to <out>.faa")
	hist := fs.Bool("hist", true, "Write ORF length histogram to <out>_length_hist.png")
	summary := fs.Bool("summary", false, "Print ORF summary to stdout")
	dbPath := fs.String("db", "", "Store the run in this SQLite database (optional)")
	listTables := fs.Bool("list_tables", false, "List available translation tables and exit")

	err := fs.Parse(args)
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}
	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *listTables {
		printTables(os.Stdout)
		return
	}

	opts := Options{
		InFile:    *inputFile,
		MinLength: *minLen,
		TableID:   *table,
		OutPrefix: *out,
		GFF:       *gff,
		FAA:       *faa,
		Hist:      *hist,
		Summary:   *summary,
		DBPath:    *dbPath,
	}
	if err := Execute(opts, os.Stdout); err != nil {
		log.Fatalf("error running ORF finder: %v", err)
	}
}
