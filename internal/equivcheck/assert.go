package equivcheck

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openql-go/openql/ir/gate"
)

// AssertEquivalentUnderReorder runs both gate orderings shots times and
// requires their measurement histograms to agree within tolerance on
// every outcome either one produced, generalizing the teacher's
// AssertHistogramDistribution (qc/testutil/testutil.go) from a
// histogram-vs-expected-probabilities comparison to a
// histogram-vs-histogram one (neither side is a known ground truth
// here, only their equivalence in order, per §8 invariant 1).
func AssertEquivalentUnderReorder(t *testing.T, original, reordered []*gate.Gate, qubitCount, shots int, tolerance float64) {
	t.Helper()

	histA, err := Histogram(original, qubitCount, shots)
	require.NoError(t, err)
	histB, err := Histogram(reordered, qubitCount, shots)
	require.NoError(t, err)

	outcomes := make(map[string]struct{})
	for k := range histA {
		outcomes[k] = struct{}{}
	}
	for k := range histB {
		outcomes[k] = struct{}{}
	}

	for outcome := range outcomes {
		probA := float64(histA[outcome]) / float64(shots)
		probB := float64(histB[outcome]) / float64(shots)
		require.InDelta(t, probA, probB, tolerance,
			"outcome %q: original=%.3f reordered=%.3f diverge beyond tolerance %.3f", outcome, probA, probB, tolerance)
	}
}
