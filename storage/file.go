package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// fileDoc is the on-disk layout of a FileKV
type fileDoc struct {
	Ints  map[string]int   `yaml:"ints,omitempty"`
	Lists map[string][]int `yaml:"lists,omitempty"`
}

// FileKV stores all keys in a single YAML document, rewritten on every Set
// A missing file reads as empty
type FileKV struct {
	mu   sync.Mutex
	path string
}

func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

// Path returns the backing file location
func (f *FileKV) Path() string { return f.path }

func (f *FileKV) load() (fileDoc, error) {
	doc := fileDoc{}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("read %s: %w", f.path, err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fileDoc{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, f.path, err)
	}
	return doc, nil
}

func (f *FileKV) save(doc fileDoc) error {
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create score directory: %w", err)
	}
	// Replace atomically via a sibling temp file
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

func (f *FileKV) GetInt(key string) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.load()
	if err != nil {
		return 0, false, err
	}
	v, ok := doc.Ints[key]
	return v, ok, nil
}

func (f *FileKV) SetInt(key string, v int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.load()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}
	if doc.Ints == nil {
		doc.Ints = make(map[string]int)
	}
	doc.Ints[key] = v
	return f.save(doc)
}

func (f *FileKV) GetList(key string) ([]int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.load()
	if err != nil {
		return nil, false, err
	}
	v, ok := doc.Lists[key]
	return v, ok, nil
}

func (f *FileKV) SetList(key string, v []int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.load()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}
	if doc.Lists == nil {
		doc.Lists = make(map[string][]int)
	}
	doc.Lists[key] = v
	return f.save(doc)
}
