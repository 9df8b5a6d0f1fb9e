package core

import (
	"errors"
	"fmt"
)

var (
	ErrWindowCreation = errors.New("window creation failed")
	ErrCanvasCreation = errors.New("canvas creation failed")
	ErrInvalidConfig  = errors.New("invalid renderer config")
	ErrAlreadyStarted = errors.New("renderer already started")
)

func invalidConfig(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
