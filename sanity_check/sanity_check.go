package sanity_check

import (
	"fmt"
	"os"

	version_control "orf_buddy_go/config" // Version control file
	"orf_buddy_go/gencode"
	"orf_buddy_go/orf_finder"
)

const (
	checkSequence = "ATGAAATAA"
	checkProtein  = "MK"
)

// Check runs a fixed nine-base genome through the ORF finder and confirms
// a single plus-strand ORF translated to MK.
func Check() error {
	table, err := gencode.Lookup(gencode.DefaultTable)
	if err != nil {
		return err
	}
	orfs, err := orf_finder.FindAll(checkSequence, 6, table)
	if err != nil {
		return err
	}
	if len(orfs) != 1 {
		return fmt.Errorf("expected 1 ORF in %s, found %d", checkSequence, len(orfs))
	}
	o := orfs[0]
	if o.Start != 0 || o.End != len(checkSequence) || o.Strand != orf_finder.Plus || o.Frame != 0 {
		return fmt.Errorf("unexpected ORF %d-%d strand %s frame %d", o.Start, o.End, o.Strand, o.Frame)
	}
	if o.Protein != checkProtein {
		return fmt.Errorf("expected protein %s, got %s", checkProtein, o.Protein)
	}
	return nil
}

// Run performs a simple sanity check to ensure ORF Buddy is
// running properly printing helpful message and version number.
func Run(args []string) {
	if err := Check(); err != nil {
		fmt.Fprintf(os.Stderr, "Sanity check failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully running ORF Buddy! (%s)\n", version_control.Main_version)
}
