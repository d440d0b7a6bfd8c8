package program

import (
	"testing"

	"github.com/openql-go/openql/ir/kernel"
	"github.com/openql-go/openql/ir/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlatform(t *testing.T) *platform.Platform {
	t.Helper()
	p, err := platform.New(3, 0, 0, 20)
	require.NoError(t, err)
	return p
}

func TestAddKernelAppendsInOrder(t *testing.T) {
	p := testPlatform(t)
	pr := New("prog", p)

	k1, err := kernel.New("k1", 3, 0, 0, 20)
	require.NoError(t, err)
	k2, err := kernel.New("k2", 3, 0, 0, 20)
	require.NoError(t, err)

	require.NoError(t, pr.AddKernel(k1))
	require.NoError(t, pr.AddKernel(k2))

	ks := pr.Kernels()
	require.Len(t, ks, 2)
	assert.Equal(t, "k1", ks[0].Name)
	assert.Equal(t, "k2", ks[1].Name)
}

func TestAddKernelRejectsQubitCountMismatch(t *testing.T) {
	p := testPlatform(t)
	pr := New("prog", p)

	k, err := kernel.New("k", 5, 0, 0, 20)
	require.NoError(t, err)

	err = pr.AddKernel(k)
	assert.Error(t, err)
}

func TestKernelByNameFindsKernel(t *testing.T) {
	p := testPlatform(t)
	pr := New("prog", p)
	k, err := kernel.New("main", 3, 0, 0, 20)
	require.NoError(t, err)
	require.NoError(t, pr.AddKernel(k))

	assert.Same(t, k, pr.KernelByName("main"))
	assert.Nil(t, pr.KernelByName("nope"))
}

func TestKernelsReturnsDefensiveCopy(t *testing.T) {
	p := testPlatform(t)
	pr := New("prog", p)
	k, err := kernel.New("main", 3, 0, 0, 20)
	require.NoError(t, err)
	require.NoError(t, pr.AddKernel(k))

	ks := pr.Kernels()
	ks[0] = nil
	assert.NotNil(t, pr.Kernels()[0])
}
