package models

import (
	"fmt"
	"strings"
)

// Energy describes how intense a track feels in a set.
type Energy int

const (
	EnergyLow Energy = iota + 1
	EnergyMedium
	EnergyHigh
)

// String returns the display label for the energy level.
func (e Energy) String() string {
	switch e {
	case EnergyLow:
		return "Low"
	case EnergyMedium:
		return "Medium"
	case EnergyHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Valid reports whether e is one of the three defined levels.
func (e Energy) Valid() bool {
	return e >= EnergyLow && e <= EnergyHigh
}

// ParseEnergy converts a case-insensitive label ("low", "medium", "high") into an [Energy].
func ParseEnergy(s string) (Energy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return EnergyLow, nil
	case "medium", "med":
		return EnergyMedium, nil
	case "high":
		return EnergyHigh, nil
	default:
		return 0, fmt.Errorf("invalid energy level: %q", s)
	}
}

// Energies returns all levels in ascending order, for menus and pickers.
func Energies() []Energy {
	return []Energy{EnergyLow, EnergyMedium, EnergyHigh}
}
