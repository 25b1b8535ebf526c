// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package protea

import (
	"fmt"
	"strings"
)

// Fixed byte offsets within a data-request reply.
//
//	6: message type
//	7: response type (00=config, 01=input, 02=output)
//	8..27: preset name, ASCII, NUL padded
//	30: preset number, 0-based
const (
	respMessageTypeOff  = 6
	respResponseTypeOff = 7
	respNameOff         = 8
	respNameLen         = 20
	respPresetOff       = 30
)

// DataResponse is the decoded form of a data-request reply.
type DataResponse struct {
	MessageType  byte
	ResponseType byte
	PresetName   string
	PresetNumber int // 1-based
}

// GetDataRequest fetches configuration data for the current preset, or
// data for a single input or output channel. Channel arguments are
// 1-based and zero means unset: pass (0, 0) for the config request. At
// most one of the two may be set.
func (d *Ne2424M) GetDataRequest(inputChannel, outputChannel int) (*DataResponse, error) {
	var requestType, channelNumber byte
	switch {
	case inputChannel != 0 && outputChannel != 0:
		return nil, fmt.Errorf("%w: pass an input channel, an output channel, or neither", ErrInvalidArgument)
	case inputChannel != 0:
		if inputChannel < 1 || inputChannel > MaxChannel {
			return nil, fmt.Errorf("%w: input channel %d outside 1..%d", ErrInvalidArgument, inputChannel, MaxChannel)
		}
		requestType = RequestInput
		channelNumber = byte(inputChannel - 1)
	case outputChannel != 0:
		if outputChannel < 1 || outputChannel > MaxChannel {
			return nil, fmt.Errorf("%w: output channel %d outside 1..%d", ErrInvalidArgument, outputChannel, MaxChannel)
		}
		requestType = RequestOutput
		channelNumber = byte(outputChannel - 1)
	default:
		requestType = RequestConfig
	}

	length, err := ResolveLength(MsgDataResponse, requestType)
	if err != nil {
		return nil, err
	}

	raw, err := d.session.Exchange(MsgDataRequest, []byte{requestType, channelNumber}, length)
	if err != nil {
		return nil, err
	}
	return decodeDataResponse(d.session.profile, raw)
}

func decodeDataResponse(p Profile, raw []byte) (*DataResponse, error) {
	if !p.ValidFrame(raw) {
		return nil, &InvalidMessageContentError{Reason: "the device sent an unrecognized message", Raw: raw}
	}

	name := string(raw[respNameOff : respNameOff+respNameLen])
	return &DataResponse{
		MessageType:  raw[respMessageTypeOff],
		ResponseType: raw[respResponseTypeOff],
		PresetName:   strings.TrimRight(name, "\x00"),
		PresetNumber: int(raw[respPresetOff]) + 1,
	}, nil
}
