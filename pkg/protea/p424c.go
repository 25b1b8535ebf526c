// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package protea

import (
	"bytes"
	"fmt"
)

// The 4.24C's recall command and the fixed length of its reply. The
// catalog in catalog.go documents the ne24.24M command set; the 4.24C
// predates it and only the recall exchange below is known.
const (
	msgRecall424C     = 21
	recallResponseLen = 10
)

// P424C drives a Protea 4.24C system processor.
//
// Two quirks set it apart from the rest of the family. It boots
// speaking MIDI's 31.25 kbps, which ordinary RS-232 hardware cannot
// produce, and switches itself to 9600 bps only after receiving a few
// bytes at the wrong speed (ForceStandardSpeed). And it loads preset
// parameters sequentially during recall, so RecallPreset recalls twice
// to keep transient gain combinations off the outputs.
type P424C struct {
	session *Session
}

// NewP424C opens a device handle over the given transport for the
// device listening on midiChannel (1-16).
func NewP424C(t Transport, midiChannel int) (*P424C, error) {
	profile, err := P424CProfile(midiChannel)
	if err != nil {
		return nil, err
	}
	s, err := NewSession(t, profile)
	if err != nil {
		return nil, err
	}
	return &P424C{session: s}, nil
}

// Session exposes the underlying session for raw commands.
func (d *P424C) Session() *Session {
	return d.session
}

// ForceStandardSpeed nudges the device out of its native 31.25 kbps by
// writing six zero bytes, then reads the 10-byte preamble the device
// sends once it has switched to 9600 bps. The preamble must be ten
// SpeedPreambleByte repetitions.
//
// This is a handshake probe, not a command: a non-matching preamble
// returns false with no error, and the caller decides whether that is
// fatal. An error is only returned when the transport itself fails.
func (d *P424C) ForceStandardSpeed() (bool, error) {
	if err := d.session.transport.FlushInput(); err != nil {
		return false, fmt.Errorf("flush input: %w", err)
	}
	if _, err := d.session.transport.Write(make([]byte, speedProbeZeros)); err != nil {
		return false, fmt.Errorf("write speed probe: %w", err)
	}
	preamble, err := d.session.transport.Read(speedPreambleLen)
	if err != nil {
		return false, fmt.Errorf("read speed preamble: %w", err)
	}
	want := bytes.Repeat([]byte{SpeedPreambleByte}, speedPreambleLen)
	return bytes.Equal(preamble, want), nil
}

// RecallPreset recalls preset 1-30.
//
// The 4.24C assigns DSP parameters one at a time during recall. When
// the outgoing preset has hot output gains and the incoming one has
// hot input gains, the intermediate states can put genuinely unsafe
// levels on the outputs. So the first recall always lands muted; once
// the parameters have settled, a second recall restores the gains
// exactly as stored. With muted set, the second pass is skipped and
// the outputs stay muted.
func (d *P424C) RecallPreset(preset int, muted bool) error {
	if preset < 1 || preset > maxPresetP424C {
		return fmt.Errorf("%w: preset %d outside 1..%d", ErrInvalidArgument, preset, maxPresetP424C)
	}

	if _, err := d.session.Exchange(msgRecall424C, []byte{byte(preset - 1), 0x01}, recallResponseLen); err != nil {
		return err
	}
	if muted {
		return nil
	}

	d.session.sleep(recallSettleDelay)
	_, err := d.session.Exchange(msgRecall424C, []byte{byte(preset - 1), 0x00}, recallResponseLen)
	return err
}
