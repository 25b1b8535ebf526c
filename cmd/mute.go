// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var muteOff bool

var muteCmd = &cobra.Command{
	Use:   "mute",
	Short: "Mute or unmute all outputs (ne24.24M)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, conn, err := openNe2424M()
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := dev.MuteAllOutputs(!muteOff); err != nil {
			return err
		}
		if muteOff {
			fmt.Println("All outputs unmuted")
		} else {
			fmt.Println("All outputs muted")
		}
		return nil
	},
}

func init() {
	muteCmd.Flags().BoolVar(&muteOff, "off", false, "Unmute instead of mute")
	rootCmd.AddCommand(muteCmd)
}
