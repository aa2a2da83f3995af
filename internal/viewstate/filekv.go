package viewstate

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mrz1836/opsdeck/internal/errors"
	"github.com/mrz1836/opsdeck/internal/flock"
)

// File permission constants for persisted view state.
const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// FileKV is a KV backed by a single JSON file of key/value pairs, written
// atomically (write-then-rename) so a crash mid-write never corrupts the
// stored state. This is the default backend for single-machine use.
type FileKV struct {
	path string
}

// NewFileKV creates a FileKV persisting to the given file path. The
// parent directory is created if needed.
func NewFileKV(path string) (*FileKV, error) {
	if path == "" {
		return nil, errors.Wrap(errors.ErrEmptyValue, "view state path")
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, errors.Wrap(err, "failed to create view state directory")
	}
	return &FileKV{path: path}, nil
}

// Get returns the value for key from the state file. A missing file means
// no keys are present.
func (f *FileKV) Get(ctx context.Context, key string) (string, bool, error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	default:
	}

	values, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores the value for key, rewriting the state file atomically.
func (f *FileKV) Set(ctx context.Context, key, value string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// The state file is shared across opsdeck processes, so the
	// read-modify-write runs under an exclusive lock on a sidecar file.
	unlock, err := f.lock()
	if err != nil {
		return err
	}
	defer unlock()

	values, err := f.read()
	if err != nil {
		return err
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode view state")
	}
	return atomicWrite(f.path, data)
}

// lock acquires an exclusive non-blocking lock on the sidecar lock file
// and returns a release function.
func (f *FileKV) lock() (func(), error) {
	lockFile, err := os.OpenFile(f.path+".lock", os.O_RDWR|os.O_CREATE, filePerm) //#nosec G304 -- path is constructed internally
	if err != nil {
		return nil, errors.Wrap(err, "failed to open view state lock file")
	}
	if err := flock.Exclusive(lockFile.Fd()); err != nil {
		_ = lockFile.Close()
		return nil, errors.Wrap(errors.ErrViewStateLocked, err.Error())
	}
	return func() {
		_ = flock.Unlock(lockFile.Fd())
		_ = lockFile.Close()
	}, nil
}

// read loads the state file into a map, treating a missing file as empty.
func (f *FileKV) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read view state file")
	}

	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		// A corrupt state file resets rather than wedging the console.
		return map[string]string{}, nil
	}
	return values, nil
}

// atomicWrite writes data to path using write-then-rename.
func atomicWrite(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm) //#nosec G304 -- path is constructed internally
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "failed to write view state")
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "failed to sync view state")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "failed to close view state file")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "failed to replace view state file")
	}
	return nil
}

// Ensure FileKV implements KV.
var _ KV = (*FileKV)(nil)
