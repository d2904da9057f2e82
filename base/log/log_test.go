package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithFieldsAccumulate(t *testing.T) {
	l := Log().WithField("a", 1).WithFields(Fields{"b": 2})
	require.Len(t, l.fields, 4)

	// branching off a logger must not leak fields into the original
	base := Log().WithField("a", 1)
	_ = base.WithField("b", 2)
	require.Len(t, base.fields, 2)
}

func TestSetDebugRebuildsRoot(t *testing.T) {
	prev := root
	SetDebug(true)
	require.NotSame(t, prev, root)
	require.NotNil(t, Log().base)
	SetDebug(false)
}
