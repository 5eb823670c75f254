//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDirectory struct {
	calls int
}

func (d *countingDirectory) DefaultBranchForAdmin(_ context.Context, _ string, _ string) (string, error) {
	d.calls++
	return "", nil
}

func (d *countingDirectory) BranchName(_ context.Context, branchID string) (string, error) {
	d.calls++
	return "Branch " + branchID, nil
}

func (d *countingDirectory) UserName(_ context.Context, _ string) (string, error) {
	d.calls++
	return "Amy", nil
}

func TestDirectoryCache_Redis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}

	ctx := context.Background()
	rdb, err := NewClient(ctx, addr, "", 15)
	require.NoError(t, err)
	t.Cleanup(func() {
		rdb.FlushDB(ctx)
		_ = rdb.Close()
	})
	require.NoError(t, rdb.FlushDB(ctx).Err())

	inner := &countingDirectory{}
	c := NewDirectoryCache(rdb, inner, time.Minute)

	for i := 0; i < 3; i++ {
		name, err := c.BranchName(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, "Branch b1", name)
	}
	assert.Equal(t, 1, inner.calls)

	for i := 0; i < 2; i++ {
		branch, err := c.DefaultBranchForAdmin(ctx, "a1", "")
		require.NoError(t, err)
		assert.Empty(t, branch)
	}
	assert.Equal(t, 2, inner.calls, "empty answers are cached")
}
