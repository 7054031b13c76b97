package tasklist

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/josephgoksu/todowing/store"
)

// LoadDarkMode reads the dark mode flag. Dark is the default: only a stored
// "false" selects light mode.
func LoadDarkMode(slots store.Slots) (bool, error) {
	data, err := slots.Get(DarkModeSlot)
	switch {
	case errors.Is(err, store.ErrSlotNotFound), errors.Is(err, store.ErrCorruptSlot):
		return true, nil
	case err != nil:
		return true, fmt.Errorf("read %s slot: %w", DarkModeSlot, err)
	}
	return string(data) != "false", nil
}

// SaveDarkMode writes the flag as "true" or "false".
func SaveDarkMode(slots store.Slots, dark bool) error {
	if err := slots.Set(DarkModeSlot, []byte(strconv.FormatBool(dark))); err != nil {
		return fmt.Errorf("write %s slot: %w", DarkModeSlot, err)
	}
	return nil
}

// ToggleDarkMode flips the stored flag and returns the new value.
func ToggleDarkMode(slots store.Slots) (bool, error) {
	dark, err := LoadDarkMode(slots)
	if err != nil {
		return dark, err
	}
	if err := SaveDarkMode(slots, !dark); err != nil {
		return dark, err
	}
	return !dark, nil
}
