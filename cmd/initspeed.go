// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initSpeedCmd = &cobra.Command{
	Use:   "init-speed",
	Short: "Force the 4.24C onto 9600 bps (4.24C only)",
	Long: `Force the 4.24C onto 9600 bps.

The 4.24C boots talking MIDI's 31.25 kbps, which ordinary RS-232
hardware cannot produce. Writing a few bytes at the wrong speed makes
the device switch itself to 9600 bps; it confirms the switch with a
ten-byte preamble. Run this once after powering the device on, before
any other command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, conn, err := openP424C()
		if err != nil {
			return err
		}
		defer conn.Close()

		ok, err := dev.ForceStandardSpeed()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("device did not confirm the speed switch (no preamble); is it powered on and connected?")
		}

		fmt.Println("Device switched to 9600 bps")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSpeedCmd)
}
