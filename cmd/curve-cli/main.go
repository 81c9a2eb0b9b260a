// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/utils/logging"
)

const cliName = "curve-cli"

var (
	log        logging.Logger = logging.NoLog{}
	logFactory *factory
)

var rootCmd = &cobra.Command{
	Use:   cliName,
	Short: "Bonding curve pricing CLI",
	Long:  `A CLI application for pricing tokens along bonding curves and running pricing plans.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initLogger(cmd)
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if logFactory != nil {
			logFactory.Close()
			logFactory = nil
		}
		log = logging.NoLog{}
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.EnablePrefixMatching = true
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.DisableAutoGenTag = true
	rootCmd.SilenceErrors = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format (text or json)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (default info)")
	rootCmd.PersistentFlags().String("log-dir", "", "Directory for rotated log files (disabled if empty)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Do not write logs to stderr")
}

func initLogger(cmd *cobra.Command) error {
	levelStr, err := getConfigValue(cmd, "log-level", false)
	if err != nil {
		return err
	}
	if levelStr == "" {
		levelStr = logging.Info.String()
	}
	level, err := logging.ToLevel(levelStr)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	logDir, err := getConfigValue(cmd, "log-dir", false)
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}

	config := logging.Config{}
	config.LogLevel = level
	config.DisplayLevel = level
	config.LogFormat = logging.JSON
	config.Directory = logDir
	config.MaxSize = 8
	config.MaxFiles = 5
	config.MaxAge = 7
	config.DisableWriterDisplaying = quiet

	logFactory = newFactory(config, cmd.ErrOrStderr())
	log, err = logFactory.Make(cliName)
	if err != nil {
		logFactory.Close()
		logFactory = nil
		return err
	}
	log.Debug("logger initialized",
		zap.String("log-level", levelStr),
		zap.String("log-dir", logDir),
		zap.Bool("quiet", quiet),
	)
	return nil
}

func main() {
	Execute()
}
