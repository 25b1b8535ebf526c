// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sebleblanc/go-protea/pkg/protea"
)

var (
	statusInput  int
	statusOutput int
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Query the active preset or a single channel (ne24.24M)",
	Long: `Query the active preset or a single channel.

Without flags this fetches the configuration of the current preset.
With --input or --output it fetches the data block of one channel
(1-60). The two flags are mutually exclusive.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, conn, err := openNe2424M()
		if err != nil {
			return err
		}
		defer conn.Close()

		resp, err := dev.GetDataRequest(statusInput, statusOutput)
		if err != nil {
			return err
		}

		fmt.Printf("Preset %d: %s\n", resp.PresetNumber, resp.PresetName)
		switch resp.ResponseType {
		case protea.RequestInput:
			fmt.Printf("Input channel %d data received\n", statusInput)
		case protea.RequestOutput:
			fmt.Printf("Output channel %d data received\n", statusOutput)
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().IntVar(&statusInput, "input", 0, "Input channel to query (1-60)")
	statusCmd.Flags().IntVar(&statusOutput, "output", 0, "Output channel to query (1-60)")
	rootCmd.AddCommand(statusCmd)
}
