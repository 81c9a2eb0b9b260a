// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanchego/version"
)

var Version = &version.Semantic{
	Major: 0,
	Minor: 1,
	Patch: 0,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printValue(cmd, versionCmdResponse{Version: Version.String()})
	},
}

type versionCmdResponse struct {
	Version string `json:"version"`
}

func (r versionCmdResponse) String() string {
	return cliName + " " + r.Version
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
