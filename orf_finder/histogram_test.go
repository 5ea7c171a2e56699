package orf_finder

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderLengthHistogramSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderLengthHistogram(&buf, "svg", sampleORFs, 6); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not SVG")
	}
}

func TestWriteLengthHistogramPNG(t *testing.T) {
	dir := t.TempDir()
	for name, orfs := range map[string][]ORF{
		"some.png":  sampleORFs,
		"empty.png": nil,
		"same.png":  {{Length: 300}, {Length: 300}},
	} {
		path := filepath.Join(dir, name)
		if err := WriteLengthHistogram(path, orfs, 100); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte("\x89PNG")) {
			t.Errorf("%s: not a PNG file", name)
		}
	}
}
