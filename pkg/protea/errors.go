// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package protea

import (
	"errors"
	"fmt"
)

// ErrTransportUnavailable is returned when a session is constructed
// without a transport.
var ErrTransportUnavailable = errors.New("protea: no transport available")

// ErrInvalidArgument is wrapped by all input-validation failures
// (preset, channel or MIDI channel out of range, mutually exclusive
// arguments). These are rejected before any I/O happens.
var ErrInvalidArgument = errors.New("protea: invalid argument")

// UnknownMessageTypeError reports a catalog miss: either the message
// type byte itself is not in the catalog, or its length varies by
// subtype and the subtype is missing or unknown.
type UnknownMessageTypeError struct {
	MessageType    byte
	Subtype        *byte
	SubtypeMissing bool
}

func (e *UnknownMessageTypeError) Error() string {
	switch {
	case e.SubtypeMissing:
		return fmt.Sprintf("protea: message type 0x%02X needs a subtype to resolve its length", e.MessageType)
	case e.Subtype != nil:
		return fmt.Sprintf("protea: unknown subtype 0x%02X for message type 0x%02X", *e.Subtype, e.MessageType)
	default:
		return fmt.Sprintf("protea: unknown message type 0x%02X", e.MessageType)
	}
}

// InvalidMessageContentError reports a response that failed start/stop
// byte validation. The raw bytes are kept for diagnosis.
type InvalidMessageContentError struct {
	Reason string
	Raw    []byte
}

func (e *InvalidMessageContentError) Error() string {
	return fmt.Sprintf("protea: %s (raw: % X)", e.Reason, e.Raw)
}

// ShortReadError reports a read that returned fewer bytes than the
// catalog expects, which is how a read timeout manifests. It is kept
// distinct from InvalidMessageContentError so callers can tell a
// silent device from a babbling one.
type ShortReadError struct {
	Want int
	Got  int
	Raw  []byte
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("protea: short read: got %d of %d bytes before the read timeout", e.Got, e.Want)
}
