package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/odestep/internal/dynamo"
)

// Store keeps saved runs as directories under baseDir.
type Store struct {
	baseDir string
}

// New returns a Store rooted at baseDir. Call Init before saving.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Model     string             `json:"model"`
	Dim       int                `json:"dim"`
	Timestamp time.Time          `json:"timestamp"`
	X0        []float64          `json:"x0"`
	Horizon   float64            `json:"horizon"`
	StepSize  float64            `json:"stepsize"`
	Steps     int                `json:"steps"`
	Params    map[string]float64 `json:"params,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
	Host      string             `json:"host,omitempty"`
}

// Run describes an integration call to persist.
type Run struct {
	Model    string
	Horizon  float64
	StepSize float64
	Params   map[string]float64
	Metrics  map[string]float64
	// Host is a free-form description of the machine, e.g. its vector features.
	Host string
}

// SaveScalar writes a 1-D trajectory as columns time,x.
func (s *Store) SaveScalar(run Run, x0 float64, traj dynamo.Trajectory) (string, error) {
	meta := s.newMeta(run, 1, []float64{x0}, traj.Len())
	return s.save(meta, []string{"time", "x"}, func(i int, row []float64) {
		row[0] = traj[i]
	})
}

// SaveVector writes a 3-D trajectory as columns time,x,y,z. Padding is not stored.
func (s *Store) SaveVector(run Run, x0 [3]float64, traj *dynamo.Trajectory3D) (string, error) {
	meta := s.newMeta(run, dynamo.Dim3, x0[:], traj.Len())
	return s.save(meta, []string{"time", "x", "y", "z"}, func(i int, row []float64) {
		st := traj.State(i)
		copy(row, st[:])
	})
}

func (s *Store) newMeta(run Run, dim int, x0 []float64, steps int) RunMetadata {
	now := time.Now()
	return RunMetadata{
		ID:        fmt.Sprintf("%s_%d", run.Model, now.UnixNano()),
		Model:     run.Model,
		Dim:       dim,
		Timestamp: now,
		X0:        append([]float64(nil), x0...),
		Horizon:   run.Horizon,
		StepSize:  run.StepSize,
		Steps:     steps,
		Params:    run.Params,
		Metrics:   run.Metrics,
		Host:      run.Host,
	}
}

func (s *Store) save(meta RunMetadata, header []string, fill func(i int, row []float64)) (string, error) {
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
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

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(header); err != nil {
		return "", err
	}

	vals := make([]float64, len(header)-1)
	rec := make([]string, len(header))
	for i := 0; i < meta.Steps; i++ {
		fill(i, vals)
		rec[0] = strconv.FormatFloat(float64(i)*meta.StepSize, 'g', -1, 64)
		for j, v := range vals {
			rec[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// List returns every run under the base directory, oldest first.
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadStates returns the stored states (one row per step) and their times.
func (s *Store) LoadStates(runID string) ([][]float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "states.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return [][]float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	states := make([][]float64, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("states.csv line %d: %w", i+1, err)
		}

		state := make([]float64, 0, len(record)-1)
		for j := 1; j < len(record); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("states.csv line %d: %w", i+1, err)
			}
			state = append(state, val)
		}
		times = append(times, t)
		states = append(states, state)
	}

	return states, times, nil
}
