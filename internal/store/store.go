// Package store persists fetched datasets as timestamped CSV snapshots
// under a root directory, keeping a bounded history per dataset.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/framefeed/framefeed/internal/csvio"
	"github.com/framefeed/framefeed/internal/frame"
)

const datasetDir = "datasets"

var (
	// ErrBadName means a dataset name holds characters outside
	// [a-z0-9-].
	ErrBadName = errors.New("invalid dataset name")
	// ErrNotFound means no snapshot exists for the dataset.
	ErrNotFound = errors.New("dataset not found")

	nameRe     = regexp.MustCompile(`^[a-z0-9-]+$`)
	snapshotRe = regexp.MustCompile(`^([a-z0-9-]+)-(\d+)\.csv$`)
)

// Manager handles dataset snapshots on disk.
type Manager struct {
	dataDir      string
	maxSnapshots int
	csvOpts      csvio.Options
}

type Config struct {
	// RootDir is the framefeed home directory; snapshots live in its
	// datasets subdirectory.
	RootDir string
	// MaxSnapshots bounds the history kept per dataset.
	MaxSnapshots int
}

func (c *Config) validate() error {
	var errGrp []error
	if c.RootDir == "" {
		errGrp = append(errGrp, fmt.Errorf("root directory is required"))
	}
	if c.MaxSnapshots <= 0 || c.MaxSnapshots > 50 {
		errGrp = append(errGrp, fmt.Errorf("max snapshots must be between 1 and 50"))
	}
	return errors.Join(errGrp...)
}

// New creates a snapshot manager rooted at cfg.RootDir.
func New(cfg *Config) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	dataDir := filepath.Join(cfg.RootDir, datasetDir)
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create dataset directory: %w", err)
	}
	return &Manager{
		dataDir:      dataDir,
		maxSnapshots: cfg.MaxSnapshots,
		csvOpts:      csvio.Options{IndexColumn: "index"},
	}, nil
}

// Save writes a new snapshot of the frame and prunes history beyond the
// configured limit. It returns the snapshot path.
func (m *Manager) Save(name string, f *frame.Frame) (string, error) {
	if !nameRe.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrBadName, name)
	}

	filename := filepath.Join(m.dataDir, fmt.Sprintf("%s-%d.csv", name, time.Now().UnixNano()))
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create snapshot file: %w", err)
	}
	if err := csvio.Write(file, f, m.csvOpts); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close snapshot file: %w", err)
	}

	log.Debug().Msgf("saved snapshot %s (%d rows)", filename, f.Len())
	if err := m.prune(name); err != nil {
		return "", err
	}
	return filename, nil
}

// LoadLatest reads the newest snapshot of the dataset back into a frame.
func (m *Manager) LoadLatest(name string) (*frame.Frame, error) {
	if !nameRe.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrBadName, name)
	}
	files, err := m.snapshots(name)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	latest := files[len(files)-1]
	file, err := os.Open(latest)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", latest, err)
	}
	defer file.Close()
	return csvio.Read(file, m.csvOpts)
}

// List returns the distinct dataset names with at least one snapshot.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list dataset directory: %w", err)
	}
	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		match := snapshotRe.FindStringSubmatch(e.Name())
		if match == nil || seen[match[1]] {
			continue
		}
		seen[match[1]] = true
		names = append(names, match[1])
	}
	sort.Strings(names)
	return names, nil
}

// snapshots lists the dataset's snapshot paths oldest first. Nanosecond
// timestamps share a width, so lexical order is chronological.
func (m *Manager) snapshots(name string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(m.dataDir, name+"-*.csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshot files: %w", err)
	}
	matched := files[:0]
	for _, f := range files {
		match := snapshotRe.FindStringSubmatch(filepath.Base(f))
		if match != nil && match[1] == name {
			matched = append(matched, f)
		}
	}
	sort.Strings(matched)
	return matched, nil
}

func (m *Manager) prune(name string) error {
	files, err := m.snapshots(name)
	if err != nil {
		return err
	}
	for len(files) > m.maxSnapshots {
		stale := files[0]
		files = files[1:]
		if err := os.Remove(stale); err != nil {
			return fmt.Errorf("failed to prune snapshot %s: %w", stale, err)
		}
		log.Debug().Msgf("pruned snapshot %s", stale)
	}
	return nil
}
