package setting

import "errors"

var (
	// ErrSettingsNotFound is returned when the settings row does not exist
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrUnknownSection is returned for a section name outside AllSections
	ErrUnknownSection = errors.New("unknown settings section")

	// ErrInvalidPatch is returned when a section patch cannot be decoded
	ErrInvalidPatch = errors.New("invalid settings patch")
)
