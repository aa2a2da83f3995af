// Package flock provides cross-platform file locking utilities.
//
// The view-state file is a read-modify-write target shared by every
// opsdeck process on the machine, so writers take an exclusive,
// non-blocking lock on a sidecar lock file before rewriting it.
//
// Usage:
//
//	file, _ := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
//	if err := flock.Exclusive(file.Fd()); err != nil {
//	    // Lock not acquired - file is in use
//	}
//	defer flock.Unlock(file.Fd())
package flock
