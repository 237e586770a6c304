package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroup(t *testing.T) {
	g := Group{Members: []string{"a", "b"}}

	require.Equal(t, 2, g.Size())
	require.True(t, g.Contains("a"))
	require.False(t, g.Contains("z"))
	require.Equal(t, 0, Group{}.Size())
}

func TestPartition_Lookups(t *testing.T) {
	p := Partition{Groups: []Group{
		{Members: []string{"a", "d"}},
		{Members: []string{"b", "c"}},
	}}

	require.Equal(t, 2, p.GroupCount())
	require.Equal(t, 4, p.MemberCount())
	require.Equal(t, 0, p.GroupOf("d"))
	require.Equal(t, 1, p.GroupOf("c"))
	require.Equal(t, -1, p.GroupOf("z"))
}

func TestPartition_Complete(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}

	t.Run("accepts a proper partition", func(t *testing.T) {
		p := Partition{Groups: []Group{
			{Members: []string{"a", "d"}},
			{Members: []string{"b", "c"}},
		}}
		require.NoError(t, p.Complete(ids))
	})

	t.Run("rejects an unknown member", func(t *testing.T) {
		p := Partition{Groups: []Group{
			{Members: []string{"a", "z"}},
			{Members: []string{"b", "c", "d"}},
		}}
		err := p.Complete(ids)
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown entity")
	})

	t.Run("rejects a doubly assigned member", func(t *testing.T) {
		p := Partition{Groups: []Group{
			{Members: []string{"a", "b"}},
			{Members: []string{"b", "c", "d"}},
		}}
		err := p.Complete(ids)
		require.Error(t, err)
		require.Contains(t, err.Error(), "more than once")
	})

	t.Run("rejects a missing member", func(t *testing.T) {
		p := Partition{Groups: []Group{
			{Members: []string{"a"}},
			{Members: []string{"b", "c"}},
		}}
		err := p.Complete(ids)
		require.Error(t, err)
		require.Contains(t, err.Error(), "not assigned")
	})

	t.Run("accepts the empty partition of no ids", func(t *testing.T) {
		require.NoError(t, Partition{}.Complete(nil))
	})
}
