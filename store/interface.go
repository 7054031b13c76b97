package store

import "errors"

var (
	// ErrSlotNotFound is returned by Get when nothing has been written under the key.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrCorruptSlot is returned by Get when stored bytes fail their integrity check.
	ErrCorruptSlot = errors.New("slot is corrupt")

	// ErrInvalidKey is returned for keys that cannot name a slot.
	ErrInvalidKey = errors.New("invalid slot key")
)

// Slots defines named key-value persistence. Every Set is an unconditional
// overwrite of the previous value; there is no partial update.
type Slots interface {
	// Get returns the bytes last written under key, or ErrSlotNotFound.
	Get(key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(key string, value []byte) error

	// Close releases any resources held by the backend, such as file locks or
	// database connections.
	Close() error
}

// Locator is implemented by backends that keep slots in files on disk, so
// callers can watch them for changes made by other processes.
type Locator interface {
	// Path returns the file that changes when key is written.
	Path(key string) string
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
