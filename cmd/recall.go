// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var recallMuted bool

var recallCmd = &cobra.Command{
	Use:   "recall <preset>",
	Short: "Recall a stored preset",
	Long: `Recall a stored preset.

On the ne24.24M this is a single local recall (presets 1-31). On the
4.24C (presets 1-30) the recall runs twice: first muted, then again
unmuted once the device's DSP parameters have settled, so transient
gain combinations never reach the outputs. With --muted the second
pass is skipped and the outputs stay muted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("preset must be a number: %v", err)
		}

		switch modelName {
		case modelP424C:
			dev, conn, err := openP424C()
			if err != nil {
				return err
			}
			defer conn.Close()
			if err := dev.RecallPreset(preset, recallMuted); err != nil {
				return err
			}
		default:
			dev, conn, err := openNe2424M()
			if err != nil {
				return err
			}
			defer conn.Close()
			if err := dev.RecallPreset(preset, recallMuted); err != nil {
				return err
			}
		}

		if recallMuted {
			fmt.Printf("Recalled preset %d (outputs muted)\n", preset)
		} else {
			fmt.Printf("Recalled preset %d\n", preset)
		}
		return nil
	},
}

func init() {
	recallCmd.Flags().BoolVar(&recallMuted, "muted", false, "Leave all outputs muted after the recall")
	rootCmd.AddCommand(recallCmd)
}
