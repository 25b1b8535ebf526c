// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package protea

import (
	"bytes"
	"errors"
	"testing"
)

func TestNe2424MRecallPreset(t *testing.T) {
	tests := []struct {
		name        string
		preset      int
		muted       bool
		wantContent []byte
	}{
		{"first preset", 1, false, []byte{0x00, 0x00}},
		{"preset 3 muted", 3, true, []byte{0x02, 0x01}},
		{"last preset", 31, false, []byte{0x1E, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &recordingTransport{}
			d, err := NewNe2424M(tr)
			if err != nil {
				t.Fatalf("NewNe2424M failed: %v", err)
			}
			tr.queueResponse(validResponse(10))

			if err := d.RecallPreset(tt.preset, tt.muted); err != nil {
				t.Fatalf("RecallPreset failed: %v", err)
			}
			if len(tr.writes) != 1 {
				t.Fatalf("writes = %d, want 1", len(tr.writes))
			}

			frame := tr.writes[0]
			if frame[6] != MsgPresetRecall {
				t.Errorf("message type = 0x%02X, want 0x%02X", frame[6], MsgPresetRecall)
			}
			if !bytes.Equal(frame[7:9], tt.wantContent) {
				t.Errorf("content = % X, want % X", frame[7:9], tt.wantContent)
			}
		})
	}
}

func TestNe2424MRecallPresetOutOfRange(t *testing.T) {
	for _, preset := range []int{-1, 0, 32, 100} {
		tr := &recordingTransport{}
		d, _ := NewNe2424M(tr)

		err := d.RecallPreset(preset, false)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("RecallPreset(%d) error = %v, want ErrInvalidArgument", preset, err)
		}
		if len(tr.ops) != 0 {
			t.Errorf("RecallPreset(%d) touched the transport before validation: %v", preset, tr.ops)
		}
	}
}

func TestNe2424MMuteAllOutputs(t *testing.T) {
	tests := []struct {
		name     string
		mute     bool
		wantByte byte
	}{
		{"mute", true, 0x01},
		{"unmute", false, 0x00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &recordingTransport{}
			d, _ := NewNe2424M(tr)
			tr.queueResponse(validResponse(9))

			if err := d.MuteAllOutputs(tt.mute); err != nil {
				t.Fatalf("MuteAllOutputs failed: %v", err)
			}

			wantFrame := []byte{0xF0, 0x00, 0x01, 0x2A, 0x06, 0x00, 0x17, tt.wantByte, 0xF7}
			if !bytes.Equal(tr.writes[0], wantFrame) {
				t.Errorf("frame = % X, want % X", tr.writes[0], wantFrame)
			}
		})
	}
}

func TestNe2424MMuteAllOutputsGarbledResponse(t *testing.T) {
	tr := &recordingTransport{}
	d, _ := NewNe2424M(tr)
	raw := validResponse(9)
	raw[0] = 0x55
	tr.queueResponse(raw)

	err := d.MuteAllOutputs(true)
	var invalid *InvalidMessageContentError
	if !errors.As(err, &invalid) {
		t.Fatalf("MuteAllOutputs error = %v, want InvalidMessageContentError", err)
	}
	if !bytes.Equal(invalid.Raw, raw) {
		t.Errorf("error raw = % X, want the response bytes for diagnosis", invalid.Raw)
	}
}

func TestNe2424MMuteAllOutputsShortResponse(t *testing.T) {
	tr := &recordingTransport{}
	d, _ := NewNe2424M(tr)
	tr.queueResponse([]byte{0xF0, 0x00})

	err := d.MuteAllOutputs(true)
	var short *ShortReadError
	if !errors.As(err, &short) {
		t.Fatalf("MuteAllOutputs error = %v, want ShortReadError", err)
	}
}
