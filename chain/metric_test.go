package chain

import (
	"bytes"
	"testing"

	"github.com/harmony-one/linkedqueue/internal/utils"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCopyOnWriteMetrics(t *testing.T) {
	copies := testutil.ToFloat64(cowCopiesCounter)
	copied := testutil.ToFloat64(cowCopiedNodesCounter)

	a := New(1, 2, 3)
	b := a.Clone()
	a.Append(4) // shared with b, copies first

	require.Equal(t, copies+1, testutil.ToFloat64(cowCopiesCounter))
	require.Equal(t, copied+3, testutil.ToFloat64(cowCopiedNodesCounter))

	// both handles own their storage exclusively now
	b.Append(4)
	a.RemoveFirst()
	require.Equal(t, copies+1, testutil.ToFloat64(cowCopiesCounter))
}

func TestReleaseMetrics(t *testing.T) {
	released := testutil.ToFloat64(releasedNodesCounter)

	a := New(1, 2, 3, 4)
	b := a.Clone()

	a.Release()
	require.Equal(t, released, testutil.ToFloat64(releasedNodesCounter))

	b.Release()
	require.Equal(t, released+4, testutil.ToFloat64(releasedNodesCounter))
}

func TestMetricsRegistered(t *testing.T) {
	New(1).Clone().Append(2)

	families, err := utils.PromRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["linkedqueue_chain_cow_copies_total"])
	require.True(t, names["linkedqueue_chain_cow_copied_nodes_total"])
	require.True(t, names["linkedqueue_chain_released_nodes_total"])
}

func TestLongCopyIsLogged(t *testing.T) {
	lrd := utils.NewTestLogRedirector(t, 4)
	defer lrd.Close()
	var buf bytes.Buffer
	utils.AddLogWriter(&buf)

	a := &Chain[int]{}
	for k := 0; k < longChainLogThreshold; k++ {
		a.Insert(k)
	}
	b := a.Clone()
	b.Append(-1)
	a.Release()
	b.Release()

	require.Contains(t, buf.String(), "[Chain] storage is shared, copied before write")
	require.Contains(t, buf.String(), "[Chain] released storage")
}
