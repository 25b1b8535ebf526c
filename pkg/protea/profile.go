// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package protea

import "fmt"

// Profile carries the per-model constants of a Protea device: the
// header bytes that identify product and channel in every frame, the
// serial speed, and the framing bytes. A Profile is built once when a
// session is constructed and never mutated afterwards.
type Profile struct {
	Header    []byte
	BaudRate  int
	StartByte byte
	StopByte  byte
}

// Ne2424MProfile returns the profile of the Protea ne24.24M matrix
// processor.
func Ne2424MProfile() Profile {
	return Profile{
		Header:    []byte{0x00, 0x01, 0x2A, 0x06, 0x00},
		BaudRate:  38400,
		StartByte: StartByte,
		StopByte:  StopByte,
	}
}

// P424CProfile returns the profile of the Protea 4.24C system processor
// listening on the given MIDI channel (1-16).
func P424CProfile(midiChannel int) (Profile, error) {
	if midiChannel < 1 || midiChannel > MaxMIDIChannel {
		return Profile{}, fmt.Errorf("%w: MIDI channel %d outside 1..%d", ErrInvalidArgument, midiChannel, MaxMIDIChannel)
	}
	return Profile{
		Header:    []byte{0x00, 0x01, 0x2A, 0x03, byte(midiChannel - 1)},
		BaudRate:  9600,
		StartByte: StartByte,
		StopByte:  StopByte,
	}, nil
}
