// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ava-labs/bondingcurve/utils"
)

const configFolder = "." + cliName

// initConfig loads ~/.curve-cli/config.yaml. Keys match the long flag names
// and are only used when the flag is not set.
func initConfig() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error getting home directory:", err)
		return
	}

	configDir, err := utils.InitSubDirectory(homeDir, configFolder)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating config directory:", err)
		return
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config:", err)
		}
	}
}

func isJSONOutputRequested(cmd *cobra.Command) (bool, error) {
	output, err := getConfigValue(cmd, "output", false)
	if err != nil {
		return false, fmt.Errorf("failed to get output format: %w", err)
	}
	return strings.ToLower(output) == "json", nil
}

func printValue(cmd *cobra.Command, v fmt.Stringer) error {
	isJSON, err := isJSONOutputRequested(cmd)
	if err != nil {
		return err
	}

	if isJSON {
		jsonBytes, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.String())
	return nil
}

func getConfigValue(cmd *cobra.Command, key string, required bool) (string, error) {
	// Check flags first
	if flag := cmd.Flags().Lookup(key); flag != nil && flag.Changed {
		return flag.Value.String(), nil
	}

	// Then check viper
	if value := viper.GetString(key); value != "" {
		return value, nil
	}

	// Then the flag default
	if flag := cmd.Flags().Lookup(key); flag != nil && flag.Value.String() != "" {
		return flag.Value.String(), nil
	}

	if required {
		return "", fmt.Errorf("required value for %s not found", key)
	}
	return "", nil
}

func getConfigInt(cmd *cobra.Command, key string) (int, error) {
	if flag := cmd.Flags().Lookup(key); flag != nil && flag.Changed {
		return cmd.Flags().GetInt(key)
	}
	if viper.IsSet(key) {
		return viper.GetInt(key), nil
	}
	return cmd.Flags().GetInt(key)
}

func resolvePath(p string) (string, error) {
	if p == utils.StdinPath {
		return p, nil
	}
	return filepath.Abs(p)
}
