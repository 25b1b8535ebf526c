// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig holds per-user defaults for the global flags. All fields
// are optional; explicit flags always win.
type fileConfig struct {
	Port        string `yaml:"port"`
	Baud        int    `yaml:"baud"`
	URL         string `yaml:"url"`
	Username    string `yaml:"username"`
	Model       string `yaml:"model"`
	MIDIChannel int    `yaml:"midi_channel"`
	LogLevel    string `yaml:"log_level"`
}

// configFilePath returns ~/.config/protea/config.yaml (or the OS
// equivalent of the user config dir).
func configFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "protea", "config.yaml"), nil
}

// loadConfigFile parses the defaults file. A missing or unreadable
// file is not an error; the CLI just runs on flag defaults.
func loadConfigFile() fileConfig {
	var cfg fileConfig

	path, err := configFilePath()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	// A malformed file is ignored rather than fatal; the zap logger is
	// not up yet at this point.
	_ = yaml.Unmarshal(data, &cfg)
	return cfg
}

// applyConfigFile fills in any global flag the user did not set
// explicitly from the defaults file.
func applyConfigFile(cmd *cobra.Command) {
	cfg := loadConfigFile()
	flags := cmd.Flags()

	if cfg.Port != "" && !flags.Changed("port") {
		portName = cfg.Port
	}
	if cfg.Baud != 0 && !flags.Changed("baud") {
		baudRate = cfg.Baud
	}
	if cfg.URL != "" && !flags.Changed("url") {
		wsURL = cfg.URL
	}
	if cfg.Username != "" && !flags.Changed("username") {
		wsUsername = cfg.Username
	}
	if cfg.Model != "" && !flags.Changed("model") {
		modelName = cfg.Model
	}
	if cfg.MIDIChannel != 0 && !flags.Changed("channel") {
		midiChannel = cfg.MIDIChannel
	}
	if cfg.LogLevel != "" && !flags.Changed("log-level") {
		logLevel = cfg.LogLevel
	}
}
