package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tabebui/internal/error_values"
	"github.com/limbo/tabebui/pkg/entity"
)

// FileRepository stores each user's blob as <dir>/<user id>.json.
type FileRepository struct {
	mu  sync.Mutex
	dir string
}

func NewFileRepo(dir string) (*FileRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating state dir: %s", errorvalues.ErrStorage, err.Error())
	}
	return &FileRepository{dir: dir}, nil
}

func (fr *FileRepository) path(userID uuid.UUID) string {
	return filepath.Join(fr.dir, userID.String()+".json")
}

func (fr *FileRepository) Load(_ context.Context, userID uuid.UUID) (*entity.ProgressState, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	raw, err := os.ReadFile(fr.path(userID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errorvalues.ErrStateNotFound
		}
		return nil, fmt.Errorf("%w: reading state: %s", errorvalues.ErrStorage, err.Error())
	}
	return decodeState(raw)
}

// Save writes to a temp file and renames it over the old blob.
func (fr *FileRepository) Save(_ context.Context, userID uuid.UUID, state *entity.ProgressState) error {
	raw, err := encodeState(state)
	if err != nil {
		return err
	}
	fr.mu.Lock()
	defer fr.mu.Unlock()
	tmp, err := os.CreateTemp(fr.dir, userID.String()+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: writing state: %s", errorvalues.ErrStorage, err.Error())
	}
	defer os.Remove(tmp.Name())
	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: writing state: %s", errorvalues.ErrStorage, err.Error())
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: writing state: %s", errorvalues.ErrStorage, err.Error())
	}
	if err = os.Rename(tmp.Name(), fr.path(userID)); err != nil {
		return fmt.Errorf("%w: writing state: %s", errorvalues.ErrStorage, err.Error())
	}
	return nil
}
