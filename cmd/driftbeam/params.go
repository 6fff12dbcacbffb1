package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebgw/driftbeam/internal/engine"
	"github.com/calebgw/driftbeam/internal/preset"
)

// addParamFlags registers the ten engine parameters plus preset selection on
// a command. Flag defaults are the baseline preset, so a bare `run` is a
// valid reference run.
func addParamFlags(cmd *cobra.Command) {
	base, _ := preset.Builtin().Get("baseline")

	cmd.Flags().Uint32("seed", base.Seed, "RNG seed")
	cmd.Flags().Int("node-count", base.NodeCount, "Number of graph nodes (>= 1)")
	cmd.Flags().Float64("edge-density", base.EdgeDensity, "Edge inclusion probability in (0, 1]")
	cmd.Flags().Float64("overlap-percent", base.OverlapPercent, "Prior/novel overlap fraction in [0, 1]")
	cmd.Flags().Int("recursion-depth", base.RecursionDepth, "Number of simulation steps (>= 1)")
	cmd.Flags().Float64("rigidity", base.Rigidity, "Pruning strictness in (0, 1]")
	cmd.Flags().Int("beam-width", base.BeamWidth, "Beam candidates kept per round (>= 1)")
	cmd.Flags().Float64("activation-threshold", base.ActivationThreshold, "Active-set threshold in (0, 1)")
	cmd.Flags().Float64("context-blend", base.ContextBlend, "Context vs structure mix in [0, 1]")
	cmd.Flags().Float64("learning-rate", base.WeightLearningRate, "Weight drift learning rate in [0, 1]")
	cmd.Flags().Float64("drift-bias", base.DriftBias, "Novel-edge drift bias in [0, 1]")

	cmd.Flags().String("preset", "", "Start from a named preset")
	cmd.Flags().String("presets-file", "", "YAML file of named presets (default: built-ins)")
}

// resolveParams builds the parameter record for a command invocation: the
// selected preset (flag defaults when none), with explicitly set flags
// layered on top.
func resolveParams(cmd *cobra.Command) (engine.Params, error) {
	flags := cmd.Flags()

	var p engine.Params
	p.Seed, _ = flags.GetUint32("seed")
	p.NodeCount, _ = flags.GetInt("node-count")
	p.EdgeDensity, _ = flags.GetFloat64("edge-density")
	p.OverlapPercent, _ = flags.GetFloat64("overlap-percent")
	p.RecursionDepth, _ = flags.GetInt("recursion-depth")
	p.Rigidity, _ = flags.GetFloat64("rigidity")
	p.BeamWidth, _ = flags.GetInt("beam-width")
	p.ActivationThreshold, _ = flags.GetFloat64("activation-threshold")
	p.ContextBlend, _ = flags.GetFloat64("context-blend")
	p.WeightLearningRate, _ = flags.GetFloat64("learning-rate")
	p.DriftBias, _ = flags.GetFloat64("drift-bias")

	if presetName, _ := flags.GetString("preset"); presetName != "" {
		presets := preset.Builtin()
		if presetsFile, _ := flags.GetString("presets-file"); presetsFile != "" {
			loaded, err := preset.Load(presetsFile)
			if err != nil {
				return engine.Params{}, err
			}
			presets = loaded
		}
		base, err := presets.Get(presetName)
		if err != nil {
			return engine.Params{}, err
		}
		p = overlayChanged(base, cmd)
	}

	if err := engine.ValidateParams(p); err != nil {
		return engine.Params{}, fmt.Errorf("resolve parameters: %w", err)
	}
	return p, nil
}

// overlayChanged returns base with every explicitly set parameter flag
// applied on top of it.
func overlayChanged(base engine.Params, cmd *cobra.Command) engine.Params {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		base.Seed, _ = flags.GetUint32("seed")
	}
	if flags.Changed("node-count") {
		base.NodeCount, _ = flags.GetInt("node-count")
	}
	if flags.Changed("edge-density") {
		base.EdgeDensity, _ = flags.GetFloat64("edge-density")
	}
	if flags.Changed("overlap-percent") {
		base.OverlapPercent, _ = flags.GetFloat64("overlap-percent")
	}
	if flags.Changed("recursion-depth") {
		base.RecursionDepth, _ = flags.GetInt("recursion-depth")
	}
	if flags.Changed("rigidity") {
		base.Rigidity, _ = flags.GetFloat64("rigidity")
	}
	if flags.Changed("beam-width") {
		base.BeamWidth, _ = flags.GetInt("beam-width")
	}
	if flags.Changed("activation-threshold") {
		base.ActivationThreshold, _ = flags.GetFloat64("activation-threshold")
	}
	if flags.Changed("context-blend") {
		base.ContextBlend, _ = flags.GetFloat64("context-blend")
	}
	if flags.Changed("learning-rate") {
		base.WeightLearningRate, _ = flags.GetFloat64("learning-rate")
	}
	if flags.Changed("drift-bias") {
		base.DriftBias, _ = flags.GetFloat64("drift-bias")
	}
	return base
}
