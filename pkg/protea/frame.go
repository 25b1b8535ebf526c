// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package protea

// BuildFrame brackets header, message type and content with the
// profile's start and stop bytes. Content length is the caller's
// responsibility; the catalog knows how long each exchange should be.
func (p Profile) BuildFrame(messageType byte, content []byte) []byte {
	frame := make([]byte, 0, len(p.Header)+len(content)+3)
	frame = append(frame, p.StartByte)
	frame = append(frame, p.Header...)
	frame = append(frame, messageType)
	frame = append(frame, content...)
	frame = append(frame, p.StopByte)
	return frame
}

// ValidFrame reports whether a response is non-empty and bracketed by
// the profile's start and stop bytes. A failure here means the
// response is garbled or truncated and must not be decoded.
func (p Profile) ValidFrame(frame []byte) bool {
	return len(frame) > 0 && frame[0] == p.StartByte && frame[len(frame)-1] == p.StopByte
}
