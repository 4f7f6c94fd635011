package image

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// ImageRoot is the well-known directory every imported image lives under.
const ImageRoot = "/var/lib/rocker/images"

const (
	imageFileName = "image.json"
	rootfsDirName = "rootfs"
)

// NotFoundError is returned by Load when an image's image.json is absent.
type NotFoundError struct {
	Name, Tag string
}

func (e *NotFoundError) Error() string {
	return "image not found: " + e.Name + ":" + e.Tag
}

// Store is a catalog of imported images rooted at ImageRoot.
type Store struct {
	root string
}

// NewStore returns a Store rooted at ImageRoot.
func NewStore() *Store {
	return NewStoreAt(ImageRoot)
}

// NewStoreAt returns a Store rooted at an arbitrary directory, primarily for
// tests that don't run as root and can't write under ImageRoot.
func NewStoreAt(root string) *Store {
	return &Store{root: root}
}

func (s *Store) tagDir(name, tag string) string {
	return filepath.Join(s.root, name, ResolveTag(tag))
}

// RootfsPath returns the rootfs directory for a tagged image.
func (s *Store) RootfsPath(name, tag string) string {
	return filepath.Join(s.tagDir(name, tag), rootfsDirName)
}

func (s *Store) recordPath(name, tag string) string {
	return filepath.Join(s.tagDir(name, tag), imageFileName)
}

// Import extracts tarPath into a new <name>/<tag>/rootfs/ tree and persists
// an image.json whose size is the extracted rootfs's byte size, not the
// (compressed) tarball's, since that's what `images` actually displays.
func (s *Store) Import(tarPath, name, tag string) (*Record, error) {
	if _, err := os.Stat(tarPath); err != nil {
		return nil, errors.Wrapf(err, "tar file %s", tarPath)
	}

	tag = ResolveTag(tag)
	rootfs := s.RootfsPath(name, tag)
	if err := os.MkdirAll(rootfs, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating rootfs dir for %s:%s", name, tag)
	}

	if err := extractTar(tarPath, rootfs); err != nil {
		return nil, err
	}

	size, err := dirSize(rootfs)
	if err != nil {
		return nil, errors.Wrapf(err, "measuring rootfs size for %s:%s", name, tag)
	}

	rec := &Record{
		Name:       name,
		Tag:        tag,
		Size:       size,
		CreateTime: nowUTC(),
		ID:         DeriveID(name, tag),
	}
	if err := s.save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) save(rec *Record) error {
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return errors.Wrapf(err, "marshaling image record %s:%s", rec.Name, rec.Tag)
	}
	if err := os.WriteFile(s.recordPath(rec.Name, rec.Tag), data, 0644); err != nil {
		return errors.Wrapf(err, "writing image.json for %s:%s", rec.Name, rec.Tag)
	}
	return nil
}

// Load reads and deserializes a tagged image's record.
func (s *Store) Load(name, tag string) (*Record, error) {
	tag = ResolveTag(tag)
	data, err := os.ReadFile(s.recordPath(name, tag))
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Name: name, Tag: tag}
	} else if err != nil {
		return nil, errors.Wrapf(err, "reading image.json for %s:%s", name, tag)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrapf(err, "unmarshaling image record %s:%s", name, tag)
	}
	return &rec, nil
}

// ListAll walks <ImageRoot>/<name>/<tag>/image.json two levels deep,
// skipping anything missing image.json, sorted descending by CreateTime so
// the most recently imported image lists first.
func (s *Store) ListAll() ([]*Record, error) {
	nameEntries, err := os.ReadDir(s.root)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "reading image root")
	}

	var records []*Record
	for _, nameEntry := range nameEntries {
		if !nameEntry.IsDir() {
			continue
		}
		tagEntries, err := os.ReadDir(filepath.Join(s.root, nameEntry.Name()))
		if err != nil {
			continue
		}
		for _, tagEntry := range tagEntries {
			if !tagEntry.IsDir() {
				continue
			}
			rec, err := s.Load(nameEntry.Name(), tagEntry.Name())
			if err != nil {
				continue
			}
			records = append(records, rec)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreateTime > records[j].CreateTime
	})
	return records, nil
}

// Delete removes a tagged image, and best-effort removes the parent <name>
// directory when it is left empty.
func (s *Store) Delete(name, tag string) error {
	tag = ResolveTag(tag)
	if err := os.RemoveAll(s.tagDir(name, tag)); err != nil {
		return err
	}

	parent := filepath.Join(s.root, name)
	entries, err := os.ReadDir(parent)
	if err == nil && len(entries) == 0 {
		os.Remove(parent)
	}
	return nil
}

// extractTar delegates to the tar binary rather than an archive/tar decoder:
// it already handles every compression and permission edge case correctly,
// and rocker has no need to reimplement that.
func extractTar(tarPath, destDir string) error {
	cmd := exec.Command("tar", "-xf", tarPath, "-C", destDir)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "tar extract failed: %s", string(out))
	}
	return nil
}

func dirSize(root string) (int64, error) {
	var size int64
	err := filepath.Walk(root, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}
