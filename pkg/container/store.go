package container

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MetaRoot is the well-known directory every container record lives under.
const MetaRoot = "/var/run/rocker"

const (
	configFileName = "config.json"
	logFileName    = "container.log"
	// reservedNetworkName is a legacy subdirectory name list_all must never
	// surface as a container.
	reservedNetworkName = "network"
)

// NotFoundError is returned by Load when a container's config.json is
// absent.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "container not found: " + e.Name
}

// Store is a JSON catalog of container records under MetaRoot.
type Store struct {
	root string
}

// NewStore returns a Store rooted at MetaRoot.
func NewStore() *Store {
	return NewStoreAt(MetaRoot)
}

// NewStoreAt returns a Store rooted at an arbitrary directory, primarily for
// tests that don't run as root and can't write under MetaRoot.
func NewStoreAt(root string) *Store {
	return &Store{root: root}
}

func (s *Store) dir(name string) string {
	return filepath.Join(s.root, name)
}

// ConfigPath returns the path to a container's config.json.
func (s *Store) ConfigPath(name string) string {
	return filepath.Join(s.dir(name), configFileName)
}

// LogPath returns the path to a container's log file; pure path composition,
// no existence check.
func (s *Store) LogPath(name string) string {
	return filepath.Join(s.dir(name), logFileName)
}

// Save writes rec as pretty-printed JSON to its config.json, creating the
// container's directory if necessary.
func (s *Store) Save(rec *Record) error {
	if err := os.MkdirAll(s.dir(rec.Name), 0755); err != nil {
		return errors.Wrapf(err, "creating metadata dir for %s", rec.Name)
	}

	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return errors.Wrapf(err, "marshaling record %s", rec.Name)
	}

	if err := os.WriteFile(s.ConfigPath(rec.Name), data, 0644); err != nil {
		return errors.Wrapf(err, "writing config.json for %s", rec.Name)
	}
	return nil
}

// Load reads and deserializes a container's record.
func (s *Store) Load(name string) (*Record, error) {
	data, err := os.ReadFile(s.ConfigPath(name))
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Name: name}
	} else if err != nil {
		return nil, errors.Wrapf(err, "reading config.json for %s", name)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrapf(err, "unmarshaling record %s", name)
	}
	return &rec, nil
}

// ListAll enumerates every container under MetaRoot, skipping the reserved
// "network" entry and any entry that fails to deserialize (logged, not
// fatal, so one corrupt record doesn't hide every other container from ps).
func (s *Store) ListAll() ([]*Record, error) {
	entries, err := os.ReadDir(s.root)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "reading metadata root")
	}

	var records []*Record
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == reservedNetworkName {
			continue
		}
		rec, err := s.Load(entry.Name())
		if err != nil {
			logrus.Warnf("skipping container %s: %v", entry.Name(), err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Delete recursively removes a container's metadata directory. Deleting an
// already-absent directory is not an error.
func (s *Store) Delete(name string) error {
	return os.RemoveAll(s.dir(name))
}

// UpdateStatus loads, mutates, and saves a container's status field.
func (s *Store) UpdateStatus(name string, status Status) error {
	rec, err := s.Load(name)
	if err != nil {
		return err
	}
	rec.Status = status
	return s.Save(rec)
}
