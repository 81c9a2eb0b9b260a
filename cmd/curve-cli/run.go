// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/bondingcurve/metrics"
	"github.com/ava-labs/bondingcurve/plan"
	"github.com/ava-labs/bondingcurve/utils"
)

var errStepsFailed = errors.New("plan steps failed")

var runCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Run a pricing plan (use - to read it from stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvePath(args[0])
		if err != nil {
			return err
		}
		planBytes, err := utils.LoadInput(path, cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read plan: %w", err)
		}
		p, err := plan.Unmarshal(planBytes)
		if err != nil {
			return fmt.Errorf("failed to parse plan %s: %w", path, err)
		}

		parallelism, err := getConfigInt(cmd, "parallelism")
		if err != nil {
			return err
		}
		registry := prometheus.NewRegistry()
		m, err := metrics.New(registry)
		if err != nil {
			return err
		}

		log.Info("loaded plan",
			zap.String("path", path),
			zap.String("name", p.Name),
		)
		responses, err := plan.NewRunner(log, m, parallelism).Run(cmd.Context(), p)
		if err != nil {
			return err
		}

		isJSON, err := isJSONOutputRequested(cmd)
		if err != nil {
			return err
		}
		var failed int
		for _, resp := range responses {
			if !resp.Passed {
				failed++
			}
			if isJSON {
				if err := resp.Print(cmd.OutOrStdout()); err != nil {
					return err
				}
				continue
			}
			printStep(resp, p.Steps[resp.ID].Description)
		}
		if !isJSON {
			utils.Outf("{{yellow}}%d/%d steps passed{{/}}\n", len(responses)-failed, len(responses))
		}

		metricsFile, _ := cmd.Flags().GetString("metrics-file")
		if metricsFile != "" {
			if err := prometheus.WriteToTextfile(metricsFile, registry); err != nil {
				return fmt.Errorf("failed to write metrics: %w", err)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%w: %d of %d", errStepsFailed, failed, len(responses))
		}
		return nil
	},
}

func printStep(resp *plan.Response, description string) {
	if description == "" {
		description = fmt.Sprintf("step %d", resp.ID)
	}
	var result string
	switch {
	case resp.Price != nil:
		result = resp.Price.String()
	default:
		result = resp.Error
	}
	if resp.Passed {
		utils.Outf("{{green}}PASS{{/}} %s: %s\n", description, result)
		return
	}
	reason := resp.Failure
	if reason == "" {
		reason = resp.Error
	}
	utils.Outf("{{red}}FAIL{{/}} %s: %s\n", description, reason)
}

func init() {
	runCmd.Flags().Int("parallelism", 0, "Maximum number of steps evaluated at once (0 uses one per CPU)")
	runCmd.Flags().String("metrics-file", "", "Write query metrics to this file in the prometheus text format")
	rootCmd.AddCommand(runCmd)
}
