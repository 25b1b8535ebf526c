// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package protea

// MessageLength describes the expected response length for a message
// type: either a fixed byte count, or one selected by the subtype byte
// that follows the message type on the wire.
type MessageLength struct {
	fixed     int
	bySubtype map[byte]int
}

// FixedLength builds a catalog entry with a fixed response length.
func FixedLength(n int) MessageLength {
	return MessageLength{fixed: n}
}

// SubtypeLengths builds a catalog entry whose response length depends
// on the subtype byte.
func SubtypeLengths(lengths map[byte]int) MessageLength {
	return MessageLength{bySubtype: lengths}
}

// messageLengths maps every message type the devices speak to its
// expected response length. The table is fixed; nothing is added or
// removed at runtime.
var messageLengths = map[byte]MessageLength{
	MsgDataRequest: FixedLength(10),
	MsgDataResponse: SubtypeLengths(map[byte]int{
		RequestConfig: 33,
		RequestInput:  160,
		RequestOutput: 180,
	}),
	MsgMeterRequest:        FixedLength(8),
	MsgMeterResponse:       FixedLength(59),
	MsgPresetNamesRequest:  FixedLength(8),
	MsgPresetNamesResponse: FixedLength(708),
	MsgPresetSave:          FixedLength(29),
	MsgPresetRecall:        FixedLength(10),
	MsgDataDownload: SubtypeLengths(map[byte]int{
		RequestInput:  160,
		RequestOutput: 180,
	}),
	MsgChannelName: FixedLength(29),
	MsgPolarity:    FixedLength(10),
	MsgPreamp:      FixedLength(11),
	MsgGain:        FixedLength(11),
	MsgDelay:       FixedLength(12),
	MsgEQFilter:    FixedLength(17),
	MsgGate:        FixedLength(14),
	MsgAutoLeveler: FixedLength(15),
	MsgDucker:      FixedLength(13),
	MsgMixer:       FixedLength(13),
	MsgShelving:    FixedLength(14),
	MsgLimiting:    FixedLength(15),
	MsgChannelMute: FixedLength(10),
	MsgEQStatus:    FixedLength(10),
	MsgMuteAll:     FixedLength(9),
	MsgMixerMute:   FixedLength(11),
	MsgGainStep:    FixedLength(10),
	MsgLocalRecall: FixedLength(9),
}

// ResolveLength returns the expected response length for a message
// type. MsgDataResponse and MsgDataDownload vary by subtype and require
// the subtype byte; for fixed-length types a subtype is ignored. A miss
// at either level is an UnknownMessageTypeError, never a default.
func ResolveLength(messageType byte, subtype ...byte) (int, error) {
	entry, ok := messageLengths[messageType]
	if !ok {
		return 0, &UnknownMessageTypeError{MessageType: messageType}
	}
	if entry.bySubtype == nil {
		return entry.fixed, nil
	}
	if len(subtype) == 0 {
		return 0, &UnknownMessageTypeError{MessageType: messageType, SubtypeMissing: true}
	}
	n, ok := entry.bySubtype[subtype[0]]
	if !ok {
		st := subtype[0]
		return 0, &UnknownMessageTypeError{MessageType: messageType, Subtype: &st}
	}
	return n, nil
}
