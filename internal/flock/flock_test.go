//go:build unix

package flock_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/opsdeck/internal/flock"
)

func TestExclusiveLock(t *testing.T) {
	t.Parallel()

	t.Run("acquires lock on new file", func(t *testing.T) {
		t.Parallel()

		lockPath := filepath.Join(t.TempDir(), "viewstate.lock")
		f, err := os.OpenFile(lockPath, os.O_RDWR|os.O_CREATE, 0o600) //nolint:gosec // test-owned path
		require.NoError(t, err)
		t.Cleanup(func() { _ = f.Close() })

		require.NoError(t, flock.Exclusive(f.Fd()))
		require.NoError(t, flock.Unlock(f.Fd()))
	})

	t.Run("second holder is rejected while locked", func(t *testing.T) {
		t.Parallel()

		lockPath := filepath.Join(t.TempDir(), "viewstate.lock")
		f1, err := os.OpenFile(lockPath, os.O_RDWR|os.O_CREATE, 0o600) //nolint:gosec // test-owned path
		require.NoError(t, err)
		t.Cleanup(func() { _ = f1.Close() })

		require.NoError(t, flock.Exclusive(f1.Fd()))

		f2, err := os.OpenFile(lockPath, os.O_RDWR, 0o600) //nolint:gosec // test-owned path
		require.NoError(t, err)
		t.Cleanup(func() { _ = f2.Close() })

		assert.Error(t, flock.Exclusive(f2.Fd()))
	})

	t.Run("lock is reacquirable after unlock", func(t *testing.T) {
		t.Parallel()

		lockPath := filepath.Join(t.TempDir(), "viewstate.lock")
		f1, err := os.OpenFile(lockPath, os.O_RDWR|os.O_CREATE, 0o600) //nolint:gosec // test-owned path
		require.NoError(t, err)
		t.Cleanup(func() { _ = f1.Close() })

		require.NoError(t, flock.Exclusive(f1.Fd()))
		require.NoError(t, flock.Unlock(f1.Fd()))

		f2, err := os.OpenFile(lockPath, os.O_RDWR, 0o600) //nolint:gosec // test-owned path
		require.NoError(t, err)
		t.Cleanup(func() { _ = f2.Close() })

		require.NoError(t, flock.Exclusive(f2.Fd()))
		require.NoError(t, flock.Unlock(f2.Fd()))
	})
}
