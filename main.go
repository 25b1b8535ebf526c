// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc
//
// protea - CLI for Ashly Protea audio processors over RS-232
//
// Drives the ne24.24M and 4.24C over a local serial port or a
// serial-over-websocket bridge.

package main

import (
	"os"

	"github.com/sebleblanc/go-protea/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
