package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tsujio/game-gate-runner/weapon"
)

const profileVersion = 1

// Profile is the meta progress kept between runs.
type Profile struct {
	Version int               `json:"version"`
	Coins   int               `json:"coins"`
	Levels  weapon.MetaLevels `json:"levels"`
}

// FileStore keeps a Profile as a JSON file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the profile. A missing file yields a zero profile.
func (s *FileStore) Load() (Profile, error) {
	blob, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Profile{Version: profileVersion}, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(blob, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	if p.Version == 0 {
		p.Version = profileVersion
	}
	if p.Version != profileVersion {
		return Profile{}, fmt.Errorf("unsupported profile version: %d", p.Version)
	}
	return sanitize(p), nil
}

func (s *FileStore) Save(p Profile) error {
	p.Version = profileVersion
	return saveJSONAtomic(s.Path, sanitize(p))
}

// sanitize clamps hand-edited values into the ranges the shop can produce.
func sanitize(p Profile) Profile {
	p.Coins = max(0, p.Coins)
	for _, item := range weapon.ShopItems {
		level := min(max(0, p.Levels.Level(item)), item.MaxLevel())
		p.Levels = p.Levels.WithLevel(item, level)
	}
	return p
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func saveJSONAtomic(path string, v any) error {
	if path == "" {
		return fmt.Errorf("path is empty")
	}
	if err := ensureParentDir(path); err != nil {
		return fmt.Errorf("ensure parent dir: %w", err)
	}
	blob, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
