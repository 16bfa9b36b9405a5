package metrics_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Nagul75/File-Monitor/internal/metrics"
)

func TestRecorder_dumpContainsCounters(t *testing.T) {
	rec := metrics.NewRecorder()
	rec.FileHashed(1024, 5*time.Millisecond)
	rec.FileSkipped("read")
	rec.LedgerWrite(true)
	rec.LedgerWrite(false)

	var buf bytes.Buffer
	if err := rec.Dump(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"filemon_files_hashed_total 1",
		"filemon_bytes_hashed_total 1024",
		`filemon_files_skipped_total{reason="read"} 1`,
		`filemon_ledger_writes_total{status="success"} 1`,
		`filemon_ledger_writes_total{status="failure"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestRecorder_nilIsNoop(t *testing.T) {
	var rec *metrics.Recorder

	// None of these may panic, and Dump writes nothing.
	rec.FileHashed(1, time.Second)
	rec.FileSkipped("traversal")
	rec.LedgerWrite(true)

	var buf bytes.Buffer
	if err := rec.Dump(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("nil recorder dumped %q", buf.String())
	}
}
