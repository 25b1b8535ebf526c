// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sebleblanc/go-protea/pkg/protea"
)

const (
	modelNe2424M = "ne24.24m"
	modelP424C   = "4.24c"
)

var (
	// Serial connection flags
	portName string
	baudRate int

	// WebSocket bridge flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	// Device selection flags
	modelName   string
	midiChannel int

	logLevel string
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "protea",
	Short: "Ashly Protea RS-232 remote control",
	Long: `Protea - remote control for Ashly Protea audio processors.

Sends framed commands to a ne24.24M matrix processor or a 4.24C system
processor and decodes the responses.

Connection modes:
  Serial:    --port /dev/ttyUSB0 [--baud 38400]
  WebSocket: --url ws://bridge/ws [--username user]   (ser2net-style bridge)

Without --baud the serial speed follows the selected model (38400 for
the ne24.24M, 9600 for the 4.24C). For WebSocket authentication, the
password is read from the PROTEA_PASSWORD environment variable, or
prompted interactively if not set.

Defaults for every flag can be stored in ` + "`~/.config/protea/config.yaml`" + `.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		applyConfigFile(cmd)

		var err error
		logger, err = newLogger(logLevel)
		if err != nil {
			return err
		}

		switch modelName {
		case modelNe2424M, modelP424C:
			return nil
		default:
			return fmt.Errorf("unknown model %q (use %s or %s)", modelName, modelNe2424M, modelP424C)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 0, "Baud rate (serial only, default per model)")

	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket bridge URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	rootCmd.PersistentFlags().StringVarP(&modelName, "model", "m", modelNe2424M, "Device model (ne24.24m or 4.24c)")
	rootCmd.PersistentFlags().IntVarP(&midiChannel, "channel", "c", 1, "MIDI channel the 4.24C listens on (1-16)")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log verbosity (debug, info, warn, error)")
}

// modelProfile resolves the profile selected by the global flags.
func modelProfile() (protea.Profile, error) {
	if modelName == modelP424C {
		return protea.P424CProfile(midiChannel)
	}
	return protea.Ne2424MProfile(), nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
