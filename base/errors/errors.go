// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides small wrappers around the standard errors
// package that log non-nil errors via log/slog, for failure paths
// that have no caller to propagate to (async callbacks, UI glue).
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// New returns an error that formats as the given text.
// It is a direct wrapper of [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
// It is a direct wrapper of [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// It is a direct wrapper of [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Log logs the given error to [slog.Error] if it is non-nil,
// annotated with the caller's file and line, and returns it
// unchanged so it can be used inline in error checks.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + caller())
	}
	return err
}

// Log1 is a one-value version of [Log] for functions returning
// (value, error): it logs the error if non-nil and returns the value.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + caller())
	}
	return v
}

// Ignore1 returns the value, ignoring any error.
func Ignore1[T any](v T, _ error) T {
	return v
}

// caller returns the file:line of the caller two frames up.
func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "?"
	}
	return file + ":" + strconv.Itoa(line)
}
