// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package protea

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

// recordingTransport is a Transport fake that records every operation
// in order and replays queued responses.
type recordingTransport struct {
	ops     []string
	writes  [][]byte
	reads   [][]byte // queued responses, one per Read call
	readErr error
}

func (t *recordingTransport) Write(p []byte) (int, error) {
	t.ops = append(t.ops, "write")
	cp := make([]byte, len(p))
	copy(cp, p)
	t.writes = append(t.writes, cp)
	return len(p), nil
}

func (t *recordingTransport) Read(n int) ([]byte, error) {
	t.ops = append(t.ops, "read")
	if t.readErr != nil {
		return nil, t.readErr
	}
	if len(t.reads) == 0 {
		return nil, nil // timeout with nothing received
	}
	raw := t.reads[0]
	t.reads = t.reads[1:]
	if len(raw) > n {
		raw = raw[:n]
	}
	return raw, nil
}

func (t *recordingTransport) FlushInput() error {
	t.ops = append(t.ops, "flushInput")
	return nil
}

func (t *recordingTransport) FlushOutput() error {
	t.ops = append(t.ops, "flushOutput")
	return nil
}

// queueResponse appends a canned device response.
func (t *recordingTransport) queueResponse(raw []byte) {
	t.reads = append(t.reads, raw)
}

// validResponse builds an n-byte response with correct frame bounds.
func validResponse(n int) []byte {
	raw := make([]byte, n)
	raw[0] = StartByte
	raw[n-1] = StopByte
	return raw
}

// stubSleep replaces the session's sleep and records requested delays.
func stubSleep(s *Session) *[]time.Duration {
	var slept []time.Duration
	s.sleep = func(d time.Duration) {
		slept = append(slept, d)
	}
	return &slept
}

func TestNewSessionNilTransport(t *testing.T) {
	_, err := NewSession(nil, Ne2424MProfile())
	if !errors.Is(err, ErrTransportUnavailable) {
		t.Errorf("NewSession(nil) error = %v, want ErrTransportUnavailable", err)
	}
}

func TestWriteCommandFlushesBeforeWriting(t *testing.T) {
	tr := &recordingTransport{}
	s, err := NewSession(tr, Ne2424MProfile())
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	if err := s.WriteCommand(MsgMuteAll, []byte{0x01}); err != nil {
		t.Fatalf("WriteCommand failed: %v", err)
	}

	wantOps := []string{"flushOutput", "flushInput", "write"}
	if len(tr.ops) != len(wantOps) {
		t.Fatalf("ops = %v, want %v", tr.ops, wantOps)
	}
	for i, op := range wantOps {
		if tr.ops[i] != op {
			t.Errorf("ops[%d] = %q, want %q", i, tr.ops[i], op)
		}
	}

	wantFrame := []byte{0xF0, 0x00, 0x01, 0x2A, 0x06, 0x00, 0x17, 0x01, 0xF7}
	if !bytes.Equal(tr.writes[0], wantFrame) {
		t.Errorf("frame = % X, want % X", tr.writes[0], wantFrame)
	}
}

func TestReadResponseShortRead(t *testing.T) {
	tr := &recordingTransport{}
	s, _ := NewSession(tr, Ne2424MProfile())
	tr.queueResponse([]byte{0xF0, 0x00, 0x01})

	raw, err := s.ReadResponse(10)

	var short *ShortReadError
	if !errors.As(err, &short) {
		t.Fatalf("ReadResponse error = %v, want ShortReadError", err)
	}
	if short.Want != 10 || short.Got != 3 {
		t.Errorf("ShortReadError = want %d got %d, expected want 10 got 3", short.Want, short.Got)
	}
	if !bytes.Equal(raw, []byte{0xF0, 0x00, 0x01}) {
		t.Errorf("partial bytes = % X, want the three received bytes", raw)
	}
}

func TestReadResponseFullRead(t *testing.T) {
	tr := &recordingTransport{}
	s, _ := NewSession(tr, Ne2424MProfile())
	tr.queueResponse(validResponse(9))

	raw, err := s.ReadResponse(9)
	if err != nil {
		t.Fatalf("ReadResponse failed: %v", err)
	}
	if len(raw) != 9 {
		t.Errorf("len(raw) = %d, want 9", len(raw))
	}
}

func TestExchangeSingleCommandSingleResponse(t *testing.T) {
	tr := &recordingTransport{}
	s, _ := NewSession(tr, Ne2424MProfile())
	tr.queueResponse(validResponse(10))

	raw, err := s.Exchange(MsgPresetRecall, []byte{0x02, 0x00}, 10)
	if err != nil {
		t.Fatalf("Exchange failed: %v", err)
	}
	if len(raw) != 10 {
		t.Errorf("len(raw) = %d, want 10", len(raw))
	}
	if len(tr.writes) != 1 {
		t.Errorf("writes = %d, want exactly one command per exchange", len(tr.writes))
	}
}
