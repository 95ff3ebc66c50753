package server

import "errors"

var (
	// ErrNilEngine is returned when New receives no page engine.
	ErrNilEngine = errors.New("server: page engine is nil")
	// ErrUnknownMessage is reported for client frames with an unknown type.
	ErrUnknownMessage = errors.New("server: unknown message type")
)
