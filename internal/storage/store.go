// Package storage persists dashboard snapshots: the generated sequence and
// star field for a given seed, so a run can be listed, exported, and
// analyzed later.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/fibgalaxy/internal/config"
	"github.com/san-kum/fibgalaxy/internal/fib"
	"github.com/san-kum/fibgalaxy/internal/galaxy"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Seed          int64     `json:"seed"`
	Terms         int       `json:"terms"`
	Stars         int       `json:"stars"`
	RotationSpeed float64   `json:"rotation_speed"`
	Phi           float64   `json:"phi"`
	FinalRatio    float64   `json:"final_ratio"`
	PhiError      float64   `json:"phi_error"`
}

// Save writes one snapshot: metadata.json, sequence.csv (term, ratio, log,
// diff per row), and stars.csv (sampled attributes per star).
func (s *Store) Save(cfg *config.Config, seq fib.Terms, field *galaxy.Field) (string, error) {
	runID := fmt.Sprintf("galaxy_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	ratios := seq.Ratios()
	meta := RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		Seed:          cfg.Seed,
		Terms:         len(seq),
		Stars:         field.Params.Stars,
		RotationSpeed: cfg.RotationSpeed,
		Phi:           fib.Phi,
		FinalRatio:    ratios[len(ratios)-1],
		PhiError:      ratios[len(ratios)-1] - fib.Phi,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeSequence(filepath.Join(runDir, "sequence.csv"), seq); err != nil {
		return "", err
	}
	if err := s.writeStars(filepath.Join(runDir, "stars.csv"), field); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) writeSequence(path string, seq fib.Terms) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteSequenceCSV(f, seq)
}

// WriteSequenceCSV streams the derived sequence table to w.
func WriteSequenceCSV(w io.Writer, seq fib.Terms) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"n", "term", "ratio", "log", "diff"}); err != nil {
		return err
	}
	ratios := seq.Ratios()
	logs := seq.Logs()
	diffs := seq.Diffs()
	for i := range seq {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatInt(seq[i], 10),
			strconv.FormatFloat(ratios[i], 'f', 9, 64),
			strconv.FormatFloat(logs[i], 'f', 9, 64),
			strconv.FormatInt(diffs[i], 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

func (s *Store) writeStars(path string, field *galaxy.Field) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"theta", "radius", "omega", "r", "g", "b", "size"}); err != nil {
		return err
	}
	for i := 0; i < field.Params.Stars; i++ {
		row := []string{
			strconv.FormatFloat(field.Theta[i], 'f', 6, 64),
			strconv.FormatFloat(field.Radius[i], 'f', 6, 64),
			strconv.FormatFloat(field.Omega[i], 'f', 6, 64),
			strconv.FormatFloat(field.Color[i][0], 'f', 6, 64),
			strconv.FormatFloat(field.Color[i][1], 'f', 6, 64),
			strconv.FormatFloat(field.Color[i][2], 'f', 6, 64),
			strconv.FormatFloat(field.Size[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSequence reads back the terms and ratios of a saved run.
func (s *Store) LoadSequence(runID string) (fib.Terms, []float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "sequence.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return fib.Terms{}, []float64{}, nil
	}

	terms := make(fib.Terms, 0, len(records)-1)
	ratios := make([]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 3 {
			continue
		}
		term, err := strconv.ParseInt(rec[1], 10, 64)
		if err != nil {
			continue
		}
		ratio, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			continue
		}
		terms = append(terms, term)
		ratios = append(ratios, ratio)
	}
	return terms, ratios, nil
}

type exportData struct {
	RunMetadata
	Sequence []int64   `json:"sequence"`
	Ratios   []float64 `json:"ratios"`
}

// ExportJSON writes a saved run as one JSON document to w.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	terms, ratios, err := s.LoadSequence(runID)
	if err != nil {
		return err
	}

	data := exportData{RunMetadata: *meta, Sequence: terms, Ratios: ratios}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
