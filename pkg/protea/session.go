// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package protea

import (
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Session drives one half-duplex request/response exchange at a time
// over a single physical line. The protocol has no correlation IDs, so
// a second in-flight command would be unresolvable; every operation
// issues exactly one command and consumes exactly one response.
type Session struct {
	transport Transport
	profile   Profile
	log       *zap.Logger
	sleep     func(time.Duration)
}

// NewSession binds a transport to a device profile.
func NewSession(t Transport, p Profile) (*Session, error) {
	if t == nil {
		return nil, ErrTransportUnavailable
	}
	return &Session{
		transport: t,
		profile:   p,
		log:       zap.NewNop(),
		sleep:     time.Sleep,
	}, nil
}

// Profile returns the session's device profile.
func (s *Session) Profile() Profile {
	return s.profile
}

// SetLogger installs a logger for frame-level debug output. A nil
// logger silences the session again.
func (s *Session) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.log = l
}

// WriteCommand flushes both directions and writes one framed command.
// The flush matters: a stale byte left over from a previous, possibly
// truncated exchange would desynchronize every frame that follows.
func (s *Session) WriteCommand(messageType byte, content []byte) error {
	if err := s.transport.FlushOutput(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	if err := s.transport.FlushInput(); err != nil {
		return fmt.Errorf("flush input: %w", err)
	}

	frame := s.profile.BuildFrame(messageType, content)
	s.log.Debug("write command",
		zap.Uint8("type", messageType),
		zap.String("frame", hex.EncodeToString(frame)))

	if _, err := s.transport.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// ReadResponse blocks until expected bytes arrived or the transport's
// read timeout expired. Fewer bytes than expected is the timeout
// surfacing and comes back as a ShortReadError together with whatever
// was received; the session never retries.
func (s *Session) ReadResponse(expected int) ([]byte, error) {
	raw, err := s.transport.Read(expected)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	s.log.Debug("read response",
		zap.Int("expected", expected),
		zap.String("raw", hex.EncodeToString(raw)))

	if len(raw) < expected {
		return raw, &ShortReadError{Want: expected, Got: len(raw), Raw: raw}
	}
	return raw, nil
}

// Exchange writes one command and consumes its response, the only
// traffic pattern the protocol allows.
func (s *Session) Exchange(messageType byte, content []byte, expected int) ([]byte, error) {
	if err := s.WriteCommand(messageType, content); err != nil {
		return nil, err
	}
	return s.ReadResponse(expected)
}
