// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package protea

import (
	"errors"
	"testing"
)

func TestResolveLengthFixed(t *testing.T) {
	tests := []struct {
		messageType byte
		want        int
	}{
		{MsgDataRequest, 10},
		{MsgMeterRequest, 8},
		{MsgMeterResponse, 59},
		{MsgPresetNamesRequest, 8},
		{MsgPresetNamesResponse, 708},
		{MsgPresetSave, 29},
		{MsgPresetRecall, 10},
		{MsgChannelName, 29},
		{MsgPolarity, 10},
		{MsgPreamp, 11},
		{MsgGain, 11},
		{MsgDelay, 12},
		{MsgEQFilter, 17},
		{MsgGate, 14},
		{MsgAutoLeveler, 15},
		{MsgDucker, 13},
		{MsgMixer, 13},
		{MsgShelving, 14},
		{MsgLimiting, 15},
		{MsgChannelMute, 10},
		{MsgEQStatus, 10},
		{MsgMuteAll, 9},
		{MsgMixerMute, 11},
		{MsgGainStep, 10},
		{MsgLocalRecall, 9},
	}

	for _, tt := range tests {
		got, err := ResolveLength(tt.messageType)
		if err != nil {
			t.Errorf("ResolveLength(0x%02X) failed: %v", tt.messageType, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveLength(0x%02X) = %d, want %d", tt.messageType, got, tt.want)
		}
	}
}

func TestResolveLengthBySubtype(t *testing.T) {
	tests := []struct {
		name        string
		messageType byte
		subtype     byte
		want        int
	}{
		{"data response config", MsgDataResponse, RequestConfig, 33},
		{"data response input", MsgDataResponse, RequestInput, 160},
		{"data response output", MsgDataResponse, RequestOutput, 180},
		{"data download input", MsgDataDownload, RequestInput, 160},
		{"data download output", MsgDataDownload, RequestOutput, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLength(tt.messageType, tt.subtype)
			if err != nil {
				t.Fatalf("ResolveLength(0x%02X, 0x%02X) failed: %v", tt.messageType, tt.subtype, err)
			}
			if got != tt.want {
				t.Errorf("ResolveLength(0x%02X, 0x%02X) = %d, want %d", tt.messageType, tt.subtype, got, tt.want)
			}
		})
	}
}

func TestResolveLengthIgnoresSubtypeForFixedTypes(t *testing.T) {
	got, err := ResolveLength(MsgMuteAll, 0x42)
	if err != nil {
		t.Fatalf("ResolveLength failed: %v", err)
	}
	if got != 9 {
		t.Errorf("ResolveLength(MsgMuteAll, 0x42) = %d, want 9", got)
	}
}

func TestResolveLengthUnknown(t *testing.T) {
	tests := []struct {
		name        string
		messageType byte
		subtype     []byte
	}{
		{"0x18 gap in the catalog", 0x18, nil},
		{"beyond the table", 0x20, nil},
		{"high byte", 0xFF, nil},
		{"missing subtype for data response", MsgDataResponse, nil},
		{"missing subtype for data download", MsgDataDownload, nil},
		{"config subtype absent from data download", MsgDataDownload, []byte{RequestConfig}},
		{"unknown subtype", MsgDataResponse, []byte{0x7F}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveLength(tt.messageType, tt.subtype...)
			var unknown *UnknownMessageTypeError
			if !errors.As(err, &unknown) {
				t.Fatalf("ResolveLength error = %v, want UnknownMessageTypeError", err)
			}
			if unknown.MessageType != tt.messageType {
				t.Errorf("error carries type 0x%02X, want 0x%02X", unknown.MessageType, tt.messageType)
			}
		})
	}
}
