// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package protea

import "fmt"

// Ne2424M drives a Protea ne24.24M matrix processor.
type Ne2424M struct {
	session *Session
}

// NewNe2424M opens a device handle over the given transport.
func NewNe2424M(t Transport) (*Ne2424M, error) {
	s, err := NewSession(t, Ne2424MProfile())
	if err != nil {
		return nil, err
	}
	return &Ne2424M{session: s}, nil
}

// Session exposes the underlying session for raw commands.
func (d *Ne2424M) Session() *Session {
	return d.session
}

// RecallPreset recalls local preset 1-31. The ne24.24M applies its
// parameters in one step, so a single recall suffices; muted selects
// whether the outputs come up muted.
func (d *Ne2424M) RecallPreset(preset int, muted bool) error {
	if preset < 1 || preset > maxPresetNe2424M {
		return fmt.Errorf("%w: preset %d outside 1..%d", ErrInvalidArgument, preset, maxPresetNe2424M)
	}

	length, err := ResolveLength(MsgPresetRecall)
	if err != nil {
		return err
	}

	mutedByte := byte(0x00)
	if muted {
		mutedByte = 0x01
	}
	_, err = d.session.Exchange(MsgPresetRecall, []byte{byte(preset - 1), mutedByte}, length)
	return err
}

// MuteAllOutputs mutes or unmutes every output at once. The response
// carries no data worth decoding; only its frame bounds are checked.
func (d *Ne2424M) MuteAllOutputs(mute bool) error {
	muteByte := byte(0x00)
	if mute {
		muteByte = 0x01
	}

	length, err := ResolveLength(MsgMuteAll)
	if err != nil {
		return err
	}

	raw, err := d.session.Exchange(MsgMuteAll, []byte{muteByte}, length)
	if err != nil {
		return err
	}
	if !d.session.profile.ValidFrame(raw) {
		return &InvalidMessageContentError{Reason: "mute-all response failed frame validation", Raw: raw}
	}
	return nil
}
