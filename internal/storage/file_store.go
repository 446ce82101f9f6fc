package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	AppDirName    = "systemsnake"
	BestScoreName = "snakeHighScore.pb"
)

// FileStore keeps the best score as a protobuf Int32Value in a single file.
// Saves take an exclusive lock on a sibling ".lock" file, so two running
// games sharing the file never lower each other's record.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath is the best-score file under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, AppDirName, BestScoreName), nil
}

func (f *FileStore) Path() string {
	return f.path
}

// Load returns 0 without error when the file does not exist yet.
func (f *FileStore) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	var record wrapperspb.Int32Value
	if err := proto.Unmarshal(data, &record); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if record.GetValue() < 0 {
		return 0, fmt.Errorf("%w: negative value %d", ErrCorrupt, record.GetValue())
	}
	return int(record.GetValue()), nil
}

func (f *FileStore) Save(best int) error {
	if best < 0 || best > math.MaxInt32 {
		return fmt.Errorf("best score %d out of range", best)
	}

	data, err := proto.Marshal(wrapperspb.Int32(int32(best)))
	if err != nil {
		return fmt.Errorf("failed to encode best score: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(f.path), err)
	}

	lock := flock.New(f.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", f.path, err)
	}
	defer lock.Unlock()

	if current, err := f.Load(); err == nil && current >= best {
		return nil
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}
