// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

// Package protea implements the RS-232 control protocol spoken by the
// Ashly Protea family of audio processors (ne24.24M, 4.24C).
//
// Every command travels inside a MIDI SysEx-style frame: a fixed start
// byte, a device- and channel-identifying header, a message type byte,
// the content bytes, and a fixed stop byte. The device answers each
// command with a single fixed-length response, so the exchange is
// strictly half-duplex: one command out, one response in, never
// pipelined.
//
// The package does not open serial ports. It drives any Transport,
// which the cmd layer provides for real hardware via go.bug.st/serial.
package protea

import "time"

// Protocol framing bytes (standard MIDI SysEx start/end)
const (
	StartByte = 0xF0
	StopByte  = 0xF7
)

// Speed auto-negotiation on the 4.24C. The device boots at MIDI's
// 31.25 kbps and drops to 9600 bps after hearing a few bytes arrive at
// the wrong speed, then announces the switch with a preamble of
// SpeedPreambleByte repeated speedPreambleLen times.
const (
	SpeedPreambleByte = 0xF9
	speedPreambleLen  = 10
	speedProbeZeros   = 6
)

// Message types (ne24.24M command set)
const (
	MsgDataRequest         = 0x00
	MsgDataResponse        = 0x01
	MsgMeterRequest        = 0x02
	MsgMeterResponse       = 0x03
	MsgPresetNamesRequest  = 0x04
	MsgPresetNamesResponse = 0x05
	MsgPresetSave          = 0x06
	MsgPresetRecall        = 0x07
	MsgDataDownload        = 0x08
	MsgChannelName         = 0x09
	MsgPolarity            = 0x0A
	MsgPreamp              = 0x0B
	MsgGain                = 0x0C
	MsgDelay               = 0x0D
	MsgEQFilter            = 0x0E
	MsgGate                = 0x0F
	MsgAutoLeveler         = 0x10
	MsgDucker              = 0x11
	MsgMixer               = 0x12
	MsgShelving            = 0x13
	MsgLimiting            = 0x14
	MsgChannelMute         = 0x15
	MsgEQStatus            = 0x16
	MsgMuteAll             = 0x17
	// 0x18 is unassigned
	MsgMixerMute   = 0x19
	MsgGainStep    = 0x1A
	MsgLocalRecall = 0x42
)

// Data request subtypes. These select what a MsgDataRequest fetches and
// double as the length-selecting subtype of MsgDataResponse and
// MsgDataDownload.
const (
	RequestConfig = 0x00
	RequestInput  = 0x01
	RequestOutput = 0x02
)

// Device limits
const (
	MaxChannel       = 60 // input/output channels addressable by a data request
	MaxMIDIChannel   = 16
	maxPresetNe2424M = 31
	maxPresetP424C   = 30
)

const (
	// ReadTimeout bounds every transport read. A response that has not
	// fully arrived by then surfaces as a short read, which the session
	// classifies; it is never retried here.
	ReadTimeout = 500 * time.Millisecond

	// recallSettleDelay is how long the 4.24C needs between the muted
	// and unmuted recall passes while its DSP parameters settle.
	recallSettleDelay = 3500 * time.Millisecond
)
