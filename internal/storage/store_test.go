package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/fibgalaxy/internal/config"
	"github.com/san-kum/fibgalaxy/internal/fib"
	"github.com/san-kum/fibgalaxy/internal/galaxy"
)

func testSnapshot(t *testing.T) (*config.Config, fib.Terms, *galaxy.Field) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Stars = 50
	cfg.Seed = 42

	seq, err := fib.Sequence(cfg.Terms)
	if err != nil {
		t.Fatal(err)
	}
	field, err := galaxy.New(cfg.GalaxyParams(), cfg.Seed)
	if err != nil {
		t.Fatal(err)
	}
	return cfg, seq, field
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	cfg, seq, field := testSnapshot(t)
	runID, err := st.Save(cfg, seq, field)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "galaxy_") {
		t.Errorf("unexpected run id %q", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Terms != 20 || meta.Stars != 50 || meta.Seed != 42 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if math.Abs(meta.PhiError) > 1e-6 {
		t.Errorf("final ratio should be near phi, error %g", meta.PhiError)
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}

	cfg, seq, field := testSnapshot(t)
	if _, err := st.Save(cfg, seq, field); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestList_MissingDir(t *testing.T) {
	st := New(t.TempDir() + "/never-created")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadSequence(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	cfg, seq, field := testSnapshot(t)
	runID, err := st.Save(cfg, seq, field)
	if err != nil {
		t.Fatal(err)
	}

	terms, ratios, err := st.LoadSequence(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(terms) != len(seq) || len(ratios) != len(seq) {
		t.Fatalf("expected %d rows, got %d terms / %d ratios", len(seq), len(terms), len(ratios))
	}
	for i := range seq {
		if terms[i] != seq[i] {
			t.Errorf("term %d: expected %d, got %d", i, seq[i], terms[i])
		}
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	cfg, seq, field := testSnapshot(t)
	runID, err := st.Save(cfg, seq, field)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, runID); err != nil {
		t.Fatal(err)
	}

	var out struct {
		ID       string    `json:"id"`
		Sequence []int64   `json:"sequence"`
		Ratios   []float64 `json:"ratios"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.ID != runID {
		t.Errorf("expected id %s, got %s", runID, out.ID)
	}
	if len(out.Sequence) != 20 {
		t.Errorf("expected 20 terms, got %d", len(out.Sequence))
	}
}

func TestWriteSequenceCSV(t *testing.T) {
	seq, _ := fib.Sequence(5)
	var buf bytes.Buffer
	if err := WriteSequenceCSV(&buf, seq); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header + 5 rows, got %d lines", len(lines))
	}
	if lines[0] != "n,term,ratio,log,diff" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "2,2,2.000000000") {
		t.Errorf("unexpected row %q", lines[3])
	}
}
