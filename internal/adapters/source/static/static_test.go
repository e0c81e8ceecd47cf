package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_ReturnsCopy(t *testing.T) {
	src := New("numbers", []int{1, 2, 3})

	got, err := src.Fetch(context.Background())
	require.NoError(t, err)
	got[0] = 99

	again, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, again)
	assert.Equal(t, "static:numbers", src.Name())
}

func TestFetch_NilIsEmpty(t *testing.T) {
	got, err := New[int]("none", nil).Fetch(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFetch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New("numbers", []int{1}).Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
