// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// ExcessiveUploadError reports that too many first-time GPU uploads
// have happened over the life of the process. It is a smoke alarm for
// a common beginner bug, not a resource limit: code that constructs a
// fresh shape, shader or texture inside a per-frame code path uploads
// it to the GPU again every frame, silently ruining the frame rate.
// Reuse one instance and let re-activation find the cached upload.
type ExcessiveUploadError struct {
	// Count is the number of first-time uploads so far.
	Count int

	// Threshold is the limit that was exceeded.
	Threshold int
}

func (e *ExcessiveUploadError) Error() string {
	return fmt.Sprintf("gpu: %d objects uploaded to the GPU (limit %d): "+
		"you are probably constructing a new shape, shader, or texture every frame "+
		"inside a draw or animation function; construct it once and reuse it so "+
		"activation can find the cached per-context upload", e.Count, e.Threshold)
}

// ShaderCompileError reports that one stage of a program failed to
// compile on a context, with the native compiler diagnostic.
type ShaderCompileError struct {
	// Stage is "vertex" or "fragment".
	Stage string

	// Log is the driver's compiler diagnostic text.
	Log string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("gpu: %s shader failed to compile: %s", e.Stage, e.Log)
}

// ShaderLinkError reports that a program with two successfully
// compiled stages failed to link on a context.
type ShaderLinkError struct {
	// Log is the driver's linker diagnostic text.
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("gpu: shader program failed to link: %s", e.Log)
}
