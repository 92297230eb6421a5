package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riofed5/Book-reservation/internal/model"
)

func TestBookIDs_Remove(t *testing.T) {
	ids := model.BookIDs{"b1", "b2", "b1"}

	out, removed := ids.Remove("b1")
	require.True(t, removed)
	require.Equal(t, model.BookIDs{"b2", "b1"}, out)

	out, removed = out.Remove("b9")
	require.False(t, removed)
	require.Equal(t, model.BookIDs{"b2", "b1"}, out)
}

func TestBookIDs_Contains(t *testing.T) {
	ids := model.BookIDs{"b1", "b2"}
	require.True(t, ids.Contains("b2"))
	require.False(t, ids.Contains("b3"))
}

func TestBookIDs_ValueScan(t *testing.T) {
	t.Run("nil list stores an empty array", func(t *testing.T) {
		var ids model.BookIDs
		v, err := ids.Value()
		require.NoError(t, err)
		require.Equal(t, []byte(`[]`), v)
	})

	t.Run("round trip through jsonb bytes", func(t *testing.T) {
		v, err := model.BookIDs{"b1", "b2"}.Value()
		require.NoError(t, err)

		var out model.BookIDs
		require.NoError(t, out.Scan(v))
		require.Equal(t, model.BookIDs{"b1", "b2"}, out)
	})

	t.Run("scan of sql null yields empty list", func(t *testing.T) {
		var out model.BookIDs
		require.NoError(t, out.Scan(nil))
		require.Empty(t, out)
	})
}
