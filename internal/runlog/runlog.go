// Package runlog defines the replayable record a simulation run produces and
// its canonical content hash. A RunLog is a pure value: it carries no
// reference to live engine state, no wall-clock time, and hashes identically
// for identical run content. The JSON encoding of these types is the de
// facto export schema and round-trips losslessly.
package runlog

import (
	"github.com/calebgw/driftbeam/internal/beam"
	"github.com/calebgw/driftbeam/internal/interpret"
)

// ModelName identifies the engine that produced a runlog.
const ModelName = "driftbeam-core"

// PlaceholderTimestamp keeps runlog content pure: a constant stands in where
// a wall-clock timestamp would make equal runs hash differently.
const PlaceholderTimestamp = "1970-01-01T00:00:00.000Z"

// Params is the full parameter record for one run. The validate tags carry
// each field's documented range; the engine checks them once at the
// boundary. The same field set is what preset files must satisfy.
type Params struct {
	Seed                uint32  `json:"seed" yaml:"seed"`
	NodeCount           int     `json:"nodeCount" yaml:"nodeCount" validate:"min=1"`
	EdgeDensity         float64 `json:"edgeDensity" yaml:"edgeDensity" validate:"gt=0,lte=1"`
	OverlapPercent      float64 `json:"overlapPercent" yaml:"overlapPercent" validate:"gte=0,lte=1"`
	RecursionDepth      int     `json:"recursionDepth" yaml:"recursionDepth" validate:"min=1"`
	Rigidity            float64 `json:"rigidity" yaml:"rigidity" validate:"gt=0,lte=1"`
	BeamWidth           int     `json:"beamWidth" yaml:"beamWidth" validate:"min=1"`
	ActivationThreshold float64 `json:"activationThreshold" yaml:"activationThreshold" validate:"gt=0,lt=1"`
	ContextBlend        float64 `json:"contextBlend" yaml:"contextBlend" validate:"gte=0,lte=1"`
	WeightLearningRate  float64 `json:"weightLearningRate" yaml:"weightLearningRate" validate:"gte=0,lte=1"`
	DriftBias           float64 `json:"driftBias" yaml:"driftBias" validate:"gte=0,lte=1"`
}

// StepRunLog is the full internal state recorded for one recursion step.
// ID lists are sorted; maps serialize with sorted keys, so the encoding of a
// step is canonical.
type StepRunLog struct {
	Step           int                `json:"step"`
	Seed           uint32             `json:"seed"`
	Params         Params             `json:"params"`
	ActiveNodes    []string           `json:"activeNodes"`
	PrunedNodes    []string           `json:"prunedNodes"`
	PrunedEdges    []string           `json:"prunedEdges"`
	Beam           []beam.Candidate   `json:"beam"`
	Interpretation interpret.Summary  `json:"interpretation"`
	Activations    map[string]float64 `json:"activations"`
	EdgeWeights    map[string]float64 `json:"edgeWeights"`
	Delta          float64            `json:"delta"`
}

// RunLog is the complete ordered trace of a run. Immutable once produced;
// one run produces exactly one RunLog.
type RunLog struct {
	Model     string       `json:"model"`
	Timestamp string       `json:"timestamp"`
	Params    Params       `json:"params"`
	Steps     []StepRunLog `json:"steps"`
}
