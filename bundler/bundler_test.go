package bundler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openql-go/openql/ir/gate"
	"github.com/openql-go/openql/ir/kernel"
)

func scheduledKernel(t *testing.T, gates []*gate.Gate) *kernel.Kernel {
	t.Helper()
	k, err := kernel.New("test", 4, 2, 2, 20)
	require.NoError(t, err)
	for _, gt := range gates {
		require.NoError(t, k.AddGate(gt))
	}
	k.MarkScheduled()
	return k
}

func TestBuildGroupsSameCycleGatesIntoOneBundle(t *testing.T) {
	a := gate.New("x", []int{0}, nil, nil, 20)
	a.Cycle = 1
	b := gate.New("x", []int{1}, nil, nil, 20)
	b.Cycle = 1
	c := gate.New("x", []int{2}, nil, nil, 20)
	c.Cycle = 2

	k := scheduledKernel(t, []*gate.Gate{a, b, c})
	bundles := Build(k)

	require.Len(t, bundles, 2)
	assert.Equal(t, 1, bundles[0].StartCycle)
	assert.Len(t, bundles[0].Gates, 2)
	assert.Equal(t, 2, bundles[1].StartCycle)
	assert.Len(t, bundles[1].Gates, 1)
}

func TestBuildSkipsWaitAndDummyGates(t *testing.T) {
	a := gate.New("x", []int{0}, nil, nil, 20)
	a.Cycle = 1
	w := gate.NewWait(40)
	w.Cycle = 1
	d := gate.NewDummy()
	d.Cycle = 2
	b := gate.New("x", []int{1}, nil, nil, 20)
	b.Cycle = 2

	k := scheduledKernel(t, []*gate.Gate{a, w, d, b})
	bundles := Build(k)

	require.Len(t, bundles, 2)
	for _, bd := range bundles {
		for _, gt := range bd.Gates {
			assert.NotEqual(t, gate.Wait, gt.Typ)
			assert.NotEqual(t, gate.Dummy, gt.Typ)
		}
	}
}

func TestBuildPanicsOnUnscheduledKernel(t *testing.T) {
	k, err := kernel.New("test", 1, 0, 0, 20)
	require.NoError(t, err)
	require.NoError(t, k.AddGate(gate.New("x", []int{0}, nil, nil, 20)))
	assert.Panics(t, func() { Build(k) })
}

func TestDurationInCyclesTracksLongestGateInBundle(t *testing.T) {
	short := gate.New("x", []int{0}, nil, nil, 20)
	short.Cycle = 1
	long := gate.New("x", []int{1}, nil, nil, 60)
	long.Cycle = 1

	k := scheduledKernel(t, []*gate.Gate{short, long})
	bundles := Build(k)

	require.Len(t, bundles, 1)
	assert.Equal(t, 3, bundles[0].DurationInCycles)
}

func TestCircuitInvertsBuild(t *testing.T) {
	a := gate.New("x", []int{0}, nil, nil, 20)
	a.Cycle = 1
	b := gate.New("x", []int{1}, nil, nil, 20)
	b.Cycle = 3

	k := scheduledKernel(t, []*gate.Gate{a, b})
	bundles := Build(k)
	out := Circuit(bundles)

	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Cycle)
	assert.Equal(t, 3, out[1].Cycle)
}

func TestCircuitPanicsOnOutOfOrderBundles(t *testing.T) {
	bad := []Bundle{
		{StartCycle: 2, Gates: []*gate.Gate{gate.New("x", []int{0}, nil, nil, 20)}},
		{StartCycle: 1, Gates: []*gate.Gate{gate.New("x", []int{1}, nil, nil, 20)}},
	}
	assert.Panics(t, func() { Circuit(bad) })
}

func TestTextRendersParallelBundleWithBraces(t *testing.T) {
	a := gate.New("x", []int{0}, nil, nil, 20)
	a.Cycle = 1
	b := gate.New("y", []int{1}, nil, nil, 20)
	b.Cycle = 1

	k := scheduledKernel(t, []*gate.Gate{a, b})
	bundles := Build(k)
	out := Text(bundles, "")

	assert.Contains(t, out, "{ ")
	assert.Contains(t, out, " | ")
	assert.Contains(t, out, " }")
}

func TestTextInsertsSkipForGapBetweenBundles(t *testing.T) {
	a := gate.New("x", []int{0}, nil, nil, 20)
	a.Cycle = 1
	b := gate.New("y", []int{1}, nil, nil, 20)
	b.Cycle = 4

	k := scheduledKernel(t, []*gate.Gate{a, b})
	bundles := Build(k)
	out := Text(bundles, "")

	assert.Contains(t, out, "wait 2")
}

func TestTextHonoursCustomSkipKeyword(t *testing.T) {
	a := gate.New("x", []int{0}, nil, nil, 20)
	a.Cycle = 1
	b := gate.New("y", []int{1}, nil, nil, 20)
	b.Cycle = 4

	k := scheduledKernel(t, []*gate.Gate{a, b})
	bundles := Build(k)
	out := Text(bundles, "skip")

	assert.Contains(t, out, "skip 2")
	assert.NotContains(t, out, "wait")
}

func TestDepthOfEmptyBundlesIsZero(t *testing.T) {
	assert.Equal(t, 0, Depth(nil))
}

func TestDepthSpansFirstToLastBundleCompletion(t *testing.T) {
	a := gate.New("x", []int{0}, nil, nil, 20)
	a.Cycle = 1
	b := gate.New("x", []int{1}, nil, nil, 60)
	b.Cycle = 3

	k := scheduledKernel(t, []*gate.Gate{a, b})
	bundles := Build(k)

	assert.Equal(t, 5, Depth(bundles))
}
