// Copyright (C) 2023 The Vulkan Software Rasterizer Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package task provides cooperative completion signalling.
package task

import (
	"context"
	"sync"
)

// Task is the unit of work used in the task system.
// Tasks should generally be reentrant, they may be run more than once, and
// should be agnostic as to whether they are run in parallel.
type Task func(context.Context) error

// Noop returns a task that does nothing.
// It is used when a task is needed but there is no work to do.
func Noop() Task {
	return func(context.Context) error { return nil }
}

// Once wraps a task so that only the first invocation of the outer task
// invokes the inner task.
func Once(task Task) Task {
	once := sync.Once{}
	var err error
	return func(ctx context.Context) error {
		once.Do(func() { err = task(ctx) })
		return err
	}
}

// ShouldStop returns a chan that's closed when work done on behalf of this
// context should be stopped.
// See context.Context.Done for more details.
func ShouldStop(ctx context.Context) <-chan struct{} {
	return ctx.Done()
}

// StopReason returns a non-nil error value after ShouldStop is closed.
// See context.Context.Err for more details.
func StopReason(ctx context.Context) error {
	return ctx.Err()
}

// Stopped is shorthand for StopReason(ctx) != nil because it increases the
// readability of common use cases.
func Stopped(ctx context.Context) bool {
	return ctx.Err() != nil
}
