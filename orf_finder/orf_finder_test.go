package orf_finder

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"orf_buddy_go/gencode"
	"orf_buddy_go/orf_store"
	"orf_buddy_go/utils"
)

func writeFasta(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "genome.fa")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecuteWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	in := writeFasta(t, dir, ">seq1 demo\nATGAAA\nTAA\n>seq2\nATGTAA\n")
	out := filepath.Join(dir, "results", "orfs")
	db := filepath.Join(dir, "orfs.sqlite")

	var stdout bytes.Buffer
	opts := Options{
		InFile: in, MinLength: 6, TableID: 11, OutPrefix: out,
		GFF: true, FAA: true, Hist: true, Summary: true, DBPath: db,
	}
	if err := Execute(opts, &stdout); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	csvData, err := os.ReadFile(out + ".csv")
	if err != nil {
		t.Fatal(err)
	}
	if string(csvData) != "start,end,length,frame,strand,protein\n0,9,9,0,+,MK\n" {
		t.Errorf("csv = %q", csvData)
	}
	for _, suffix := range []string{"_length_hist.png", ".gff3", ".faa"} {
		if info, err := os.Stat(out + suffix); err != nil || info.Size() == 0 {
			t.Errorf("%s missing or empty: %v", suffix, err)
		}
	}

	log := stdout.String()
	for _, want := range []string{"Loaded seq1", "Genome length: 9 bp", "Found 1 ORFs (min_length=6)", "Wrote " + out + ".csv", "=== ORF Summary ==="} {
		if !strings.Contains(log, want) {
			t.Errorf("stdout missing %q:\n%s", want, log)
		}
	}

	store, err := orf_store.Open(db)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	ids, err := store.RunsForDigest(context.Background(), common.SequenceDigest("ATGAAATAA"))
	if err != nil || len(ids) != 1 {
		t.Fatalf("stored runs = %v, %v", ids, err)
	}
	recs, err := store.LoadORFs(context.Background(), ids[0])
	if err != nil {
		t.Fatal(err)
	}
	orfs, _ := FindAll("ATGAAATAA", 6, nil)
	if !reflect.DeepEqual(recs, ToRecords(orfs)) {
		t.Errorf("stored records = %+v", recs)
	}
}

func TestExecuteRejectsInvalidSequence(t *testing.T) {
	dir := t.TempDir()
	in := writeFasta(t, dir, ">bad\nATGNNNTAA\n")
	err := Execute(Options{InFile: in, MinLength: 3, TableID: 11, OutPrefix: filepath.Join(dir, "o")}, &bytes.Buffer{})
	if !errors.Is(err, common.ErrInvalidSequence) {
		t.Errorf("err = %v, want ErrInvalidSequence", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "o.csv")); statErr == nil {
		t.Error("no output should be written for an invalid sequence")
	}
}

func TestExecuteStoreFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	in := writeFasta(t, dir, ">s\nATGAAATAA\n")
	out := filepath.Join(dir, "results", "orfs")

	// SQLite does not create missing parent directories.
	db := filepath.Join(dir, "missing", "orfs.sqlite")
	opts := Options{InFile: in, MinLength: 6, TableID: 11, OutPrefix: out, GFF: true, Hist: true, DBPath: db}
	if err := Execute(opts, &bytes.Buffer{}); err == nil {
		t.Fatal("expected a database error")
	}
	if _, err := os.Stat(filepath.Join(dir, "results")); !os.IsNotExist(err) {
		t.Errorf("output directory created despite database failure: %v", err)
	}
}

func TestExecuteBareOutPrefix(t *testing.T) {
	dir := t.TempDir()
	in := writeFasta(t, dir, ">s\nATGAAATAA\n")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	if err := Execute(Options{InFile: in, MinLength: 6, TableID: 11, OutPrefix: "orfs"}, &bytes.Buffer{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "orfs.csv")); err != nil {
		t.Errorf("orfs.csv not written: %v", err)
	}
}

func TestExecuteRejectsBadOptions(t *testing.T) {
	dir := t.TempDir()
	in := writeFasta(t, dir, ">s\nATGTAA\n")

	cases := map[string]Options{
		"no input":      {MinLength: 6, TableID: 11, OutPrefix: "x"},
		"zero min":      {InFile: in, MinLength: 0, TableID: 11, OutPrefix: "x"},
		"no out prefix": {InFile: in, MinLength: 6, TableID: 11},
	}
	for name, opts := range cases {
		if err := Execute(opts, &bytes.Buffer{}); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	err := Execute(Options{InFile: in, MinLength: 6, TableID: 7, OutPrefix: filepath.Join(dir, "o")}, &bytes.Buffer{})
	if !errors.Is(err, gencode.ErrUnknownTable) {
		t.Errorf("table 7: err = %v, want ErrUnknownTable", err)
	}
}

func TestPrintTables(t *testing.T) {
	var buf bytes.Buffer
	printTables(&buf)
	if !strings.Contains(buf.String(), "11  Bacterial, Archaeal and Plant Plastid") {
		t.Errorf("table listing missing table 11:\n%s", buf.String())
	}
}
