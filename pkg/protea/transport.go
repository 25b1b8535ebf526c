// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package protea

// Transport is the byte-level capability the protocol core drives. The
// core never opens or configures a port itself; the cmd layer supplies
// a Transport backed by a real serial port or a serial-over-websocket
// bridge, and tests supply fakes.
type Transport interface {
	// Write sends raw bytes to the device.
	Write(p []byte) (int, error)

	// Read returns up to n bytes. The read is bounded by ReadTimeout;
	// when the timeout expires the transport returns whatever arrived,
	// possibly nothing, without error. Callers decide what a short
	// read means.
	Read(n int) ([]byte, error)

	// FlushInput discards pending inbound bytes.
	FlushInput() error

	// FlushOutput discards any unwritten outbound buffer.
	FlushOutput() error
}
