package player

import (
	"errors"
	"fmt"
)

var (
	ErrConnection = errors.New("mpd connection failed")
	ErrProtocol   = errors.New("unexpected mpd response")
)

// ConnectionError reports that the daemon could not be reached, or that an
// established connection broke and could not be re-established.
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	if e == nil {
		return ErrConnection.Error()
	}
	return fmt.Sprintf("%s: %s: %v", ErrConnection, e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() []error {
	return []error{ErrConnection, e.Err}
}

// ProtocolError reports a command the daemon rejected or answered with data
// that could not be parsed. The connection itself is still usable.
type ProtocolError struct {
	Command string
	Err     error
}

func (e *ProtocolError) Error() string {
	if e == nil {
		return ErrProtocol.Error()
	}
	return fmt.Sprintf("%s: %s: %v", ErrProtocol, e.Command, e.Err)
}

func (e *ProtocolError) Unwrap() []error {
	return []error{ErrProtocol, e.Err}
}

func protocolErrorf(command, format string, args ...any) error {
	return &ProtocolError{Command: command, Err: fmt.Errorf(format, args...)}
}
