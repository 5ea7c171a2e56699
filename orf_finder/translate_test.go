package orf_finder

import (
	"testing"

	"orf_buddy_go/gencode"
)

// kOnlyTable knows a handful of codons and nothing else.
type kOnlyTable struct{}

func (kOnlyTable) ID() int      { return 999 }
func (kOnlyTable) Name() string { return "test" }
func (kOnlyTable) Residue(codon string) byte {
	switch codon {
	case "ATG":
		return 'M'
	case "AAA":
		return 'K'
	case "TAA":
		return gencode.Stop
	}
	return gencode.Unknown
}
func (t kOnlyTable) IsStop(codon string) bool { return t.Residue(codon) == gencode.Stop }
func (kOnlyTable) IsStart(codon string) bool  { return codon == "ATG" }

func TestTranslate(t *testing.T) {
	std, err := gencode.Lookup(11)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct{ dna, want string }{
		{"ATGAAATAA", "MK"},
		{"ATGAAA", "MK"},
		{"ATGTAAAAA", "M"},
		{"ATGNNNAAATAG", "MXK"},
		{"ATGAA", "M"},
		{"TAA", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := Translate(c.dna, std); got != c.want {
			t.Errorf("Translate(%q) = %q, want %q", c.dna, got, c.want)
		}
	}
}

func TestTranslateAlternativeTable(t *testing.T) {
	mold, _ := gencode.Lookup(4)
	if got := Translate("ATGTGATAA", mold); got != "MW" {
		t.Errorf("table 4: %q, want MW", got)
	}
	bact, _ := gencode.Lookup(11)
	if got := Translate("ATGTGATAA", bact); got != "M" {
		t.Errorf("table 11: %q, want M", got)
	}
}

func TestTranslateInjectedTable(t *testing.T) {
	if got := Translate("ATGAAACCCTAA", kOnlyTable{}); got != "MKX" {
		t.Errorf("got %q, want MKX", got)
	}
}
