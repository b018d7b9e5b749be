// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// rollsim rolls a die repeatedly and reports the long-running frequency of
// each face, along with the draw and rejection counts of the underlying
// random source.
package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ava-labs/fairsample/dice"
	"github.com/ava-labs/fairsample/sampler"
	"github.com/ava-labs/fairsample/sampler/metersource"
	"github.com/ava-labs/fairsample/utils/logging"
)

const (
	sidesKey    = "sides"
	trialsKey   = "trials"
	seedKey     = "seed"
	logLevelKey = "log-level"
)

func main() {
	cmd := newCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rollsim failed: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rollsim",
		Short:        "Roll a fair die and report outcome frequencies",
		RunE:         runFunc,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Uint64(sidesKey, 6, "Number of sides on the die")
	cmd.PersistentFlags().Uint64(trialsKey, 10000, "Number of rolls to perform")
	cmd.PersistentFlags().Int64(seedKey, 0, "If non-zero, seed the pseudorandom source for a reproducible run; otherwise draw from the OS entropy reader")
	cmd.PersistentFlags().String(logLevelKey, logging.Info.String(), "Log level of the run summary")

	return cmd
}

func runFunc(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return err
	}
	v.SetEnvPrefix("rollsim")
	v.AutomaticEnv()

	level, err := logging.ToLevel(v.GetString(logLevelKey))
	if err != nil {
		return err
	}
	log := logging.NewLogger("rollsim", level, os.Stderr)
	defer log.Stop()

	var (
		sides  = v.GetUint64(sidesKey)
		trials = v.GetUint64(trialsKey)
		seed   = v.GetInt64(seedKey)

		source sampler.Source
	)
	if seed != 0 {
		source = sampler.NewPseudoSource(uint64(seed))
	} else {
		source = sampler.NewCryptoSource()
	}

	registry := prometheus.NewRegistry()
	metered, err := metersource.New("rollsim", registry, source)
	if err != nil {
		return err
	}

	die, err := dice.NewDeterministic(sides, metered)
	if err != nil {
		return err
	}

	log.Info("rolling",
		zap.Uint64("sides", sides),
		zap.Uint64("trials", trials),
		zap.Int64("seed", seed),
	)

	frequency, err := dice.LongRunningFrequency(die, trials)
	if err != nil {
		return err
	}

	for _, value := range frequency.Values() {
		fmt.Printf(
			"Value: %d, frequency: %d, percentage: %.2f%%\n",
			value,
			frequency.Count(value),
			frequency.Percent(value),
		)
	}

	draws, failures, err := gatherCounts(registry)
	if err != nil {
		return err
	}
	log.Info("finished",
		zap.Uint64("draws", draws),
		zap.Uint64("rejections", draws-trials),
		zap.Uint64("sourceFailures", failures),
	)
	return nil
}

// gatherCounts reads the draw and failure counters back out of [registry].
func gatherCounts(registry *prometheus.Registry) (uint64, uint64, error) {
	families, err := registry.Gather()
	if err != nil {
		return 0, 0, err
	}

	var draws, failures uint64
	for _, family := range families {
		var total uint64
		for _, metric := range family.GetMetric() {
			total += uint64(metric.GetCounter().GetValue())
		}
		switch family.GetName() {
		case "rollsim_draw":
			draws = total
		case "rollsim_failure":
			failures = total
		}
	}
	return draws, failures, nil
}
