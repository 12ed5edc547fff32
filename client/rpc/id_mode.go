package rpc

import (
	"errors"
	"fmt"
)

var ErrUnknownIdMode = errors.New("unknown id mode")

// IdMode controls the "id" member of outgoing requests.
type IdMode string

const (
	// IdModeNone omits the id, so every call is a notification.
	IdModeNone IdMode = "none"
	// IdModeSeq numbers requests of one client starting from 1.
	IdModeSeq IdMode = "seq"
	// IdModeUUID sends a random UUID string.
	IdModeUUID IdMode = "uuid"
)

func (m IdMode) Validate() error {
	switch m {
	case IdModeNone, IdModeSeq, IdModeUUID:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownIdMode, string(m))
}

func (m IdMode) String() string {
	return string(m)
}

// Set implements pflag.Value.
func (m *IdMode) Set(s string) error {
	mode := IdMode(s)
	if err := mode.Validate(); err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m *IdMode) Type() string {
	return "idMode"
}
