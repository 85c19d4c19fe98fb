package repository

import "errors"

var (
	// ErrCorruptSchedule means the stored schedule exists but cannot be decoded.
	ErrCorruptSchedule = errors.New("schedule document is corrupt")
	// ErrSetNotFound means no vocabulary set has the requested filename.
	ErrSetNotFound = errors.New("vocabulary set not found")
	// ErrSetExists means a vocabulary set with that filename is already stored.
	ErrSetExists = errors.New("vocabulary set already exists")
	// ErrInvalidFilename means a filename cannot name a stored set.
	ErrInvalidFilename = errors.New("invalid vocabulary set filename")
)
