// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// DefaultThreshold is the number of first-time GPU uploads after
// which [Counter.Incr] starts failing. It is deliberately coarse:
// a well-behaved demo uploads each object once per context, so a
// process that crosses 200 first-uploads is almost certainly
// re-constructing GPU-bound objects in a per-frame path.
const DefaultThreshold = 200

// Counter counts first-time GPU uploads across all objects and all
// contexts. It is only advanced on the first-upload path, never on
// re-activation. Counters are used from the single render goroutine
// only and are not locked.
type Counter struct {
	// Count is the number of first-time uploads so far.
	Count int

	// Threshold is the count above which Incr fails.
	Threshold int
}

// NewCounter returns a counter with the given threshold.
func NewCounter(threshold int) *Counter {
	return &Counter{Threshold: threshold}
}

// DefaultCounter is the process-wide upload counter, shared by every
// [Cache] that does not set its own. It is never reset. Tests use a
// private [NewCounter] instead to stay isolated.
var DefaultCounter = NewCounter(DefaultThreshold)

// Incr records one first-time upload. It returns an
// [ExcessiveUploadError] once the count exceeds the threshold;
// the count keeps advancing regardless so the error text stays
// accurate on subsequent failures.
func (ct *Counter) Incr() error {
	ct.Count++
	if ct.Count > ct.Threshold {
		return &ExcessiveUploadError{Count: ct.Count, Threshold: ct.Threshold}
	}
	return nil
}
