// Package simulation provides a scenario test harness for validating
// emergent dynamics of the simulation engine across whole runs.
//
// Scenarios exercise the real engine — no mocks. Each scenario is a named
// parameter record; the harness runs it and applies property-based
// assertions over the resulting runlog: determinism, active-set containment,
// delta consistency, pruned-edge validity, and beam-width bounds.
//
// Usage:
//
//	func TestBaselineDynamics(t *testing.T) {
//	    result := simulation.Run(t, simulation.Scenario{
//	        Name:   "baseline",
//	        Params: params,
//	    })
//	    simulation.AssertActiveSubsetOfKept(t, result)
//	    simulation.AssertDeltaContract(t, result)
//	}
package simulation
