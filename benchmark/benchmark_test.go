package benchmark

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestMeasure(t *testing.T) {
	called := false
	r := Measure("sleep", func() {
		called = true
		time.Sleep(2 * time.Millisecond)
	})
	if !called {
		t.Fatal("wrapped function was not called")
	}
	if r.Label != "sleep" || r.Elapsed < 2*time.Millisecond {
		t.Errorf("report = %+v", r)
	}
	if r.NumCPU < 1 {
		t.Errorf("NumCPU = %d", r.NumCPU)
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, Report{Label: "orf_buddy orf_finder", Elapsed: time.Second})
	out := buf.String()
	for _, want := range []string{"Time Elapsed: 1s", "GC Cycles: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRunWritesHeaderBeforeTool(t *testing.T) {
	var buf bytes.Buffer
	var seenAtStart string
	run(&buf, "orf_buddy check", func() {
		seenAtStart = buf.String()
	})
	if !strings.Contains(seenAtStart, "[Benchmark] Running: orf_buddy check") {
		t.Errorf("header not written before the tool ran:\n%q", seenAtStart)
	}
	if strings.Contains(seenAtStart, "Time Elapsed") {
		t.Errorf("usage written before the tool finished:\n%q", seenAtStart)
	}
	if !strings.Contains(buf.String(), "Time Elapsed") {
		t.Errorf("usage missing after the run:\n%s", buf.String())
	}
}
