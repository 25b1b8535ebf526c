// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sebleblanc/go-protea/pkg/protea"
)

// openNe2424M connects to a ne24.24M over the flag-selected transport.
func openNe2424M() (*protea.Ne2424M, Connection, error) {
	if modelName != modelNe2424M {
		return nil, nil, fmt.Errorf("this command only applies to the %s", modelNe2424M)
	}

	conn, desc, err := OpenConnection()
	if err != nil {
		return nil, nil, err
	}
	dev, err := protea.NewNe2424M(conn)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	dev.Session().SetLogger(logger)
	logger.Info("connected", zap.String("via", desc), zap.String("model", modelNe2424M))
	return dev, conn, nil
}

// openP424C connects to a 4.24C over the flag-selected transport.
func openP424C() (*protea.P424C, Connection, error) {
	if modelName != modelP424C {
		return nil, nil, fmt.Errorf("this command only applies to the %s", modelP424C)
	}

	conn, desc, err := OpenConnection()
	if err != nil {
		return nil, nil, err
	}
	dev, err := protea.NewP424C(conn, midiChannel)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	dev.Session().SetLogger(logger)
	logger.Info("connected",
		zap.String("via", desc),
		zap.String("model", modelP424C),
		zap.Int("midi_channel", midiChannel))
	return dev, conn, nil
}
