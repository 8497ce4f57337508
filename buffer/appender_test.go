package buffer

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cappedStore is a minimal store that only supplies the Append primitive and
// leans on the package defaults for everything else.
type cappedStore struct {
	vals  []int
	limit int
}

func (c *cappedStore) Append(v int) error {
	if len(c.vals) == c.limit {
		return ErrNotEnoughCapacity
	}
	c.vals = append(c.vals, v)
	return nil
}

func (c *cappedStore) AppendSeq(vs iter.Seq[int]) error { return AppendSeq[int](c, vs) }

func (c *cappedStore) AppendSlice(vs []int) error { return AppendSlice[int](c, vs) }

var _ Appender[int] = (*cappedStore)(nil)

func TestDefaultAppendSeq_KeepsPrefixOnFailure(t *testing.T) {
	c := &cappedStore{limit: 3}

	err := c.AppendSeq(slices.Values([]int{1, 2, 3, 4, 5}))
	assert.ErrorIs(t, err, ErrNotEnoughCapacity)

	// The default stops at the first failure and keeps what succeeded.
	assert.Equal(t, []int{1, 2, 3}, c.vals)
}

func TestDefaultAppendSlice_KeepsPrefixOnFailure(t *testing.T) {
	c := &cappedStore{limit: 2}

	err := c.AppendSlice([]int{7, 8, 9})
	assert.ErrorIs(t, err, ErrNotEnoughCapacity)
	assert.Equal(t, []int{7, 8}, c.vals)
}

func TestDefaultAppendSeq_Success(t *testing.T) {
	c := &cappedStore{limit: 10}

	require.NoError(t, c.AppendSeq(slices.Values([]int{1, 2})))
	require.NoError(t, c.AppendSlice([]int{3}))
	assert.Equal(t, []int{1, 2, 3}, c.vals)
}
