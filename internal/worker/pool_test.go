package worker

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsEveryJobBeforeStop(t *testing.T) {
	p := NewPool(3, 2)
	p.Start(context.Background())

	var ran atomic.Int32
	for i := 0; i < 20; i++ {
		err := p.Submit(context.Background(), Func{
			JobName: fmt.Sprintf("job-%d", i),
			Fn: func(context.Context) error {
				ran.Add(1)
				return nil
			},
		})
		require.NoError(t, err)
	}
	p.Stop()

	assert.EqualValues(t, 20, ran.Load())
	assert.Zero(t, p.Failures())
}

func TestPool_CountsFailures(t *testing.T) {
	p := NewPool(2, 4)
	p.Start(context.Background())

	for i := 0; i < 4; i++ {
		fail := i%2 == 0
		require.NoError(t, p.Submit(context.Background(), Func{JobName: "maybe", Fn: func(context.Context) error {
			if fail {
				return errors.New("boom")
			}
			return nil
		}}))
	}
	p.Stop()

	assert.Equal(t, 2, p.Failures())
}

func TestPool_SkipsJobsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPool(1, 4)
	p.Start(ctx)
	var ran atomic.Int32
	require.NoError(t, p.Submit(context.Background(), Func{JobName: "late", Fn: func(context.Context) error {
		ran.Add(1)
		return nil
	}}))
	p.Stop()

	assert.Zero(t, ran.Load())
	assert.Equal(t, 1, p.Failures())
}

func TestPool_SubmitHonorsContextWhenFull(t *testing.T) {
	p := NewPool(1, 1)
	block := make(chan struct{})
	p.Start(context.Background())
	defer func() {
		close(block)
		p.Stop()
	}()

	wait := Func{JobName: "wait", Fn: func(context.Context) error { <-block; return nil }}
	require.NoError(t, p.Submit(context.Background(), wait))
	require.NoError(t, p.Submit(context.Background(), wait))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Submit(ctx, wait), context.Canceled)
}
