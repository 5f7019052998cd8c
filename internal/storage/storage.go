package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/pfrederiksen/downtown-busy/internal/status"
)

// DefaultPath is where the snapshot is written when no path is given
const DefaultPath = "public/data/status.json"

// Storage handles persistence of the status snapshot
type Storage struct {
	fs   afero.Fs
	path string
}

// New creates a Storage writing to path on fs. A leading ~/ is expanded to the home directory.
func New(fs afero.Fs, path string) (*Storage, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	return &Storage{
		fs:   fs,
		path: path,
	}, nil
}

// Path returns the snapshot file path
func (s *Storage) Path() string {
	return s.path
}

// Encode renders a snapshot exactly as Write stores it
func Encode(snapshot *status.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// Write saves the snapshot, replacing any previous one
func (s *Storage) Write(snapshot *status.Snapshot) error {
	data, err := Encode(snapshot)
	if err != nil {
		return err
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// Load reads the last written snapshot
func (s *Storage) Load() (*status.Snapshot, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot status.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	// Ensure Venues is never nil
	if snapshot.Venues == nil {
		snapshot.Venues = []status.VenueRef{}
	}

	return &snapshot, nil
}
