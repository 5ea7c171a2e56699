package gencode

import (
	"errors"
	"testing"
)

func TestLookupKnownTables(t *testing.T) {
	for _, id := range Tables() {
		tbl, err := Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%d): %v", id, err)
		}
		if tbl.ID() != id {
			t.Errorf("Lookup(%d).ID() = %d", id, tbl.ID())
		}
		if tbl.Name() == "" {
			t.Errorf("table %d has no name", id)
		}
	}
}

func TestLookupUnknownTable(t *testing.T) {
	for _, id := range []int{0, 7, 8, 17, 99, -1} {
		if _, err := Lookup(id); !errors.Is(err, ErrUnknownTable) {
			t.Errorf("Lookup(%d) err = %v, want ErrUnknownTable", id, err)
		}
	}
}

func TestResidueStandard(t *testing.T) {
	tbl, err := Lookup(11)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]byte{
		"ATG": 'M', "AAA": 'K', "TTT": 'F', "GGG": 'G', "TGG": 'W',
		"TAA": Stop, "TAG": Stop, "TGA": Stop,
		"atg": 'M', "AUG": 'M',
		"ANG": Unknown, "AT": Unknown, "ATGA": Unknown, "": Unknown,
	}
	for codon, want := range cases {
		if got := tbl.Residue(codon); got != want {
			t.Errorf("Residue(%q) = %c, want %c", codon, got, want)
		}
	}
}

func TestAlternativeTables(t *testing.T) {
	mold, _ := Lookup(4)
	if got := mold.Residue("TGA"); got != 'W' {
		t.Errorf("table 4 TGA = %c, want W", got)
	}
	if mold.IsStop("TGA") {
		t.Error("table 4 should not treat TGA as stop")
	}

	vmito, _ := Lookup(2)
	if !vmito.IsStop("AGA") || !vmito.IsStop("AGG") {
		t.Error("table 2 should treat AGA/AGG as stop")
	}
}

func TestStandardAndBacterialShareResidues(t *testing.T) {
	std, _ := Lookup(1)
	bact, _ := Lookup(11)
	bases := "TCAG"
	for _, a := range bases {
		for _, b := range bases {
			for _, c := range bases {
				codon := string([]rune{a, b, c})
				if std.Residue(codon) != bact.Residue(codon) {
					t.Errorf("codon %s: table 1 %c, table 11 %c", codon, std.Residue(codon), bact.Residue(codon))
				}
			}
		}
	}
	if std.IsStart("GTG") {
		t.Error("table 1 should not list GTG as a start")
	}
	if !bact.IsStart("GTG") || !bact.IsStart("ATG") {
		t.Error("table 11 should list ATG and GTG as starts")
	}
}
