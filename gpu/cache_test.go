// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"testing"

	"github.com/intro-graphics/tinygraphics/gl/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRep struct {
	val int
}

func TestCacheEnsureOnce(t *testing.T) {
	ctx := gltest.NewRecorder()
	ct := NewCounter(DefaultThreshold)
	ch := Cache[testRep]{Counter: ct}

	inits := 0
	init := func(rep *testRep) error {
		inits++
		rep.val = 42
		return nil
	}

	first, err := ch.Ensure(ctx, init)
	require.NoError(t, err)
	assert.Equal(t, 42, first.val)
	assert.Equal(t, 1, inits)
	assert.Equal(t, 1, ct.Count)

	// every later call is a lookup: same identity, no side effects
	for i := 0; i < 10; i++ {
		again, err := ch.Ensure(ctx, init)
		require.NoError(t, err)
		assert.Same(t, first, again)
	}
	assert.Equal(t, 1, inits)
	assert.Equal(t, 1, ct.Count)
}

func TestCachePerContextIsolation(t *testing.T) {
	ctxA := gltest.NewRecorder()
	ctxB := gltest.NewRecorder()
	ct := NewCounter(DefaultThreshold)
	ch := Cache[testRep]{Counter: ct}

	repA, err := ch.Ensure(ctxA, func(rep *testRep) error { rep.val = 1; return nil })
	require.NoError(t, err)
	repB, err := ch.Ensure(ctxB, func(rep *testRep) error { rep.val = 2; return nil })
	require.NoError(t, err)

	assert.NotSame(t, repA, repB)
	assert.Equal(t, 2, ct.Count)
	assert.Equal(t, 2, ch.Len())

	// mutating one representation leaves the other unaffected
	repA.val = 99
	again, _ := ch.Lookup(ctxB)
	assert.Equal(t, 2, again.val)
}

func TestCacheInitFailure(t *testing.T) {
	ctx := gltest.NewRecorder()
	ct := NewCounter(DefaultThreshold)
	ch := Cache[testRep]{Counter: ct}

	boom := errors.New("boom")
	_, err := ch.Ensure(ctx, func(rep *testRep) error { return boom })
	assert.ErrorIs(t, err, boom)

	// no partial representation survives a failed init
	_, ok := ch.Lookup(ctx)
	assert.False(t, ok)

	// the counter charge stands; a retry charges again
	assert.Equal(t, 1, ct.Count)
	rep, err := ch.Ensure(ctx, func(rep *testRep) error { rep.val = 7; return nil })
	require.NoError(t, err)
	assert.Equal(t, 7, rep.val)
	assert.Equal(t, 2, ct.Count)
}

func TestCacheGuardThreshold(t *testing.T) {
	ctx := gltest.NewRecorder()
	ct := NewCounter(DefaultThreshold)

	// 200 distinct first uploads are fine
	caches := make([]*Cache[testRep], DefaultThreshold)
	for i := range caches {
		caches[i] = &Cache[testRep]{Counter: ct}
		_, err := caches[i].Ensure(ctx, nil)
		require.NoError(t, err)
	}

	// the 201st first upload trips the smoke alarm
	extra := &Cache[testRep]{Counter: ct}
	_, err := extra.Ensure(ctx, nil)
	var uploadErr *ExcessiveUploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, DefaultThreshold+1, uploadErr.Count)
	assert.Equal(t, DefaultThreshold, uploadErr.Threshold)
	assert.Contains(t, uploadErr.Error(), "every frame")

	// re-activating the existing 200 raises nothing
	for _, ch := range caches {
		_, err := ch.Ensure(ctx, nil)
		assert.NoError(t, err)
	}
}

func TestCounterKeepsCounting(t *testing.T) {
	ct := NewCounter(2)
	require.NoError(t, ct.Incr())
	require.NoError(t, ct.Incr())
	assert.Error(t, ct.Incr())
	err := ct.Incr()
	var uploadErr *ExcessiveUploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, 4, uploadErr.Count)
}
