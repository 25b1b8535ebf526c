// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package cmd

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"go.bug.st/serial"
	"golang.org/x/term"

	"github.com/sebleblanc/go-protea/pkg/protea"
)

// Connection is a closable protea.Transport.
type Connection interface {
	protea.Transport
	Close() error
}

// SerialConnection drives a Protea device over a local serial port.
type SerialConnection struct {
	port serial.Port
}

func (s *SerialConnection) Write(p []byte) (int, error) {
	return s.port.Write(p)
}

// Read accumulates up to n bytes. The port's read timeout bounds the
// wait; when it expires mid-response the bytes received so far are
// returned and the session classifies the short read.
func (s *SerialConnection) Read(n int) ([]byte, error) {
	buf := make([]byte, n)
	total := 0
	for total < n {
		r, err := s.port.Read(buf[total:])
		if err != nil {
			return buf[:total], err
		}
		if r == 0 {
			break // read timeout expired
		}
		total += r
	}
	return buf[:total], nil
}

func (s *SerialConnection) FlushInput() error {
	return s.port.ResetInputBuffer()
}

func (s *SerialConnection) FlushOutput() error {
	return s.port.ResetOutputBuffer()
}

func (s *SerialConnection) Close() error {
	return s.port.Close()
}

// OpenSerialConnection opens a serial port at 8N1 with the protocol's
// read timeout.
func OpenSerialConnection(portName string, baudRate int) (Connection, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %v", portName, err)
	}
	if err := port.SetReadTimeout(protea.ReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to set read timeout on %s: %v", portName, err)
	}

	return &SerialConnection{port: port}, nil
}

// ErrConnectionClosed is returned when reading from a closed WebSocket bridge
var ErrConnectionClosed = fmt.Errorf("websocket connection closed")

// WebSocketConnection drives a Protea device through a serial-over-
// websocket bridge that relays raw bytes as binary messages.
type WebSocketConnection struct {
	conn      *websocket.Conn
	buf       []byte
	bufOffset int
	closed    bool
}

func (w *WebSocketConnection) Read(n int) ([]byte, error) {
	if w.closed {
		return nil, ErrConnectionClosed
	}

	out := make([]byte, 0, n)
	deadline := time.Now().Add(protea.ReadTimeout)
	for len(out) < n {
		// Drain the local buffer first
		if w.bufOffset < len(w.buf) {
			take := n - len(out)
			if avail := len(w.buf) - w.bufOffset; take > avail {
				take = avail
			}
			out = append(out, w.buf[w.bufOffset:w.bufOffset+take]...)
			w.bufOffset += take
			continue
		}

		if err := w.conn.SetReadDeadline(deadline); err != nil {
			w.closed = true
			return out, err
		}
		messageType, data, err := w.conn.ReadMessage()
		if err != nil {
			// A timed-out read corrupts the websocket stream, so the
			// connection is unusable afterwards. The short read is still
			// reported upward as such; reconnecting is the caller's call.
			w.closed = true
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				return out, nil
			}
			return out, err
		}
		if messageType != websocket.BinaryMessage {
			continue
		}
		w.buf = data
		w.bufOffset = 0
	}
	return out, nil
}

func (w *WebSocketConnection) Write(p []byte) (int, error) {
	if err := w.conn.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// FlushInput drops locally buffered bytes. Bytes still in flight on
// the bridge cannot be reclaimed from here.
func (w *WebSocketConnection) FlushInput() error {
	w.buf = nil
	w.bufOffset = 0
	return nil
}

// FlushOutput is a no-op: writes go out as complete messages.
func (w *WebSocketConnection) FlushOutput() error {
	return nil
}

func (w *WebSocketConnection) Close() error {
	return w.conn.Close()
}

// OpenWebSocketConnection opens a bridge connection with HTTP Basic auth
func OpenWebSocketConnection(wsURL, username, password string, skipSSLVerify bool) (Connection, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %v", err)
	}

	switch u.Scheme {
	case "ws", "wss":
		// OK
	default:
		return nil, fmt.Errorf("unsupported URL scheme: %s (use ws:// or wss://)", u.Scheme)
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
	if u.Scheme == "wss" {
		dialer.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: skipSSLVerify,
		}
	}

	headers := http.Header{}
	if username != "" && password != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
		headers.Set("Authorization", "Basic "+credentials)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	conn, resp, err := dialer.DialContext(ctx, wsURL, headers)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("WebSocket connection failed (HTTP %d): %v", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("WebSocket connection failed: %v", err)
	}

	return &WebSocketConnection{conn: conn}, nil
}

// GetPassword retrieves the bridge password from the environment or
// prompts the user.
func GetPassword() (string, error) {
	if pw := os.Getenv("PROTEA_PASSWORD"); pw != "" {
		return pw, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")

	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		// Fallback to regular input if terminal functions fail
		reader := bufio.NewReader(os.Stdin)
		password, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read password: %v", err)
		}
		fmt.Fprintln(os.Stderr)
		return strings.TrimSpace(password), nil
	}

	fmt.Fprintln(os.Stderr)
	return string(passwordBytes), nil
}

// OpenConnection opens either a serial or WebSocket transport based on
// the global flags. The serial speed defaults to the selected model's
// baud rate.
func OpenConnection() (Connection, string, error) {
	if wsURL != "" {
		password := ""
		if wsUsername != "" {
			var err error
			password, err = GetPassword()
			if err != nil {
				return nil, "", err
			}
		}

		conn, err := OpenWebSocketConnection(wsURL, wsUsername, password, wsNoSSLVerify)
		if err != nil {
			return nil, "", err
		}
		return conn, fmt.Sprintf("WebSocket: %s", wsURL), nil
	}

	if portName != "" {
		profile, err := modelProfile()
		if err != nil {
			return nil, "", err
		}
		baud := baudRate
		if baud == 0 {
			baud = profile.BaudRate
		}

		conn, err := OpenSerialConnection(portName, baud)
		if err != nil {
			return nil, "", err
		}
		return conn, fmt.Sprintf("Serial: %s @ %d baud", portName, baud), nil
	}

	return nil, "", fmt.Errorf("either --port or --url must be specified")
}
