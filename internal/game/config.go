package game

import "errors"

// ErrConfigIndex is returned when an alternate configuration or ROM
// index is outside [0, len).
var ErrConfigIndex = errors.New("configuration index out of range")

func configAt(list []LaunchConfig, i int) (LaunchConfig, error) {
	if i < 0 || i >= len(list) {
		return LaunchConfig{}, ErrConfigIndex
	}
	return list[i], nil
}

func deleteConfigAt(list []LaunchConfig, i int) ([]LaunchConfig, error) {
	if i < 0 || i >= len(list) {
		return list, ErrConfigIndex
	}
	return append(list[:i], list[i+1:]...), nil
}
