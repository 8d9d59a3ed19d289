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

package driver_test

import (
	"testing"
	"time"

	"github.com/szx/vulkan-software-rasterizer/core/assert"
	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/driver"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

func TestFenceStartsUnsignaled(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	f := driver.CreateFence(ctx, d, nil)
	defer driver.DestroyFence(ctx, f.Handle())
	assert.For(ctx, "initial state").ThatBoolean(f.Signaled()).IsFalse()
}

func TestFenceCreatedSignaled(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	f := driver.CreateFence(ctx, d, &vulkan.FenceCreateInfo{Flags: vulkan.FenceCreateSignaledBit})
	defer driver.DestroyFence(ctx, f.Handle())
	assert.For(ctx, "initial state").ThatBoolean(f.Signaled()).IsTrue()

	f.Reset(ctx)
	assert.For(ctx, "after reset").ThatBoolean(f.Signaled()).IsFalse()
}

func TestFenceSignalResetIdempotent(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	f := driver.CreateFence(ctx, d, nil)
	defer driver.DestroyFence(ctx, f.Handle())

	f.Signal(ctx)
	f.Signal(ctx)
	assert.For(ctx, "after double signal").ThatBoolean(f.Signaled()).IsTrue()

	f.Reset(ctx)
	f.Reset(ctx)
	assert.For(ctx, "after double reset").ThatBoolean(f.Signaled()).IsFalse()
}

func TestWaitZeroTimeoutPolls(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	f := driver.CreateFence(ctx, d, nil)
	defer driver.DestroyFence(ctx, f.Handle())

	r := d.WaitForFences(ctx, []*driver.Fence{f}, true, 0)
	assert.For(ctx, "unsignaled poll").That(r).Equals(vulkan.Timeout)
	assert.For(ctx, "state untouched").ThatBoolean(f.Signaled()).IsFalse()

	f.Signal(ctx)
	r = d.WaitForFences(ctx, []*driver.Fence{f}, true, 0)
	assert.For(ctx, "signaled poll").That(r).Equals(vulkan.Success)
}

func TestWaitTimesOutThenSucceeds(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	f := driver.CreateFence(ctx, d, nil)
	defer driver.DestroyFence(ctx, f.Handle())

	r := d.WaitForFences(ctx, []*driver.Fence{f}, true, uint64(time.Millisecond))
	assert.For(ctx, "wait expired").That(r).Equals(vulkan.Timeout)

	f.Signal(ctx)
	r = d.WaitForFences(ctx, []*driver.Fence{f}, true, uint64(time.Second))
	assert.For(ctx, "wait satisfied").That(r).Equals(vulkan.Success)
}

func TestWaitWakesOnSignal(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	f := driver.CreateFence(ctx, d, nil)
	defer driver.DestroyFence(ctx, f.Handle())

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Signal(ctx)
	}()
	r := d.WaitForFences(ctx, []*driver.Fence{f}, true, vulkan.TimeoutInfinite)
	assert.For(ctx, "wait").That(r).Equals(vulkan.Success)
}

func TestWaitAnyNeedsOneFence(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	a := driver.CreateFence(ctx, d, nil)
	defer driver.DestroyFence(ctx, a.Handle())
	b := driver.CreateFence(ctx, d, nil)
	defer driver.DestroyFence(ctx, b.Handle())

	go func() {
		time.Sleep(10 * time.Millisecond)
		b.Signal(ctx)
	}()
	r := d.WaitForFences(ctx, []*driver.Fence{a, b}, false, uint64(time.Second))
	assert.For(ctx, "wait any").That(r).Equals(vulkan.Success)
	assert.For(ctx, "a untouched").ThatBoolean(a.Signaled()).IsFalse()
}

func TestWaitAllNeedsEveryFence(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	a := driver.CreateFence(ctx, d, nil)
	defer driver.DestroyFence(ctx, a.Handle())
	b := driver.CreateFence(ctx, d, nil)
	defer driver.DestroyFence(ctx, b.Handle())

	a.Signal(ctx)
	r := d.WaitForFences(ctx, []*driver.Fence{a, b}, true, uint64(time.Millisecond))
	assert.For(ctx, "one of two").That(r).Equals(vulkan.Timeout)

	b.Signal(ctx)
	r = d.WaitForFences(ctx, []*driver.Fence{a, b}, true, uint64(time.Second))
	assert.For(ctx, "two of two").That(r).Equals(vulkan.Success)
}

func TestWaitSkipsForeignFences(t *testing.T) {
	ctx := log.Testing(t)
	d1 := newTestDevice(ctx, t)
	defer d1.Destroy(ctx)
	d2 := newTestDevice(ctx, t)
	defer d2.Destroy(ctx)

	foreign := driver.CreateFence(ctx, d2, nil)
	defer driver.DestroyFence(ctx, foreign.Handle())

	// Every fence is skipped, so the wait is trivially satisfied.
	r := d1.WaitForFences(ctx, []*driver.Fence{foreign}, true, uint64(time.Second))
	assert.For(ctx, "wait").That(r).Equals(vulkan.Success)
	assert.For(ctx, "foreign untouched").ThatBoolean(foreign.Signaled()).IsFalse()
}

func TestResetSkipsForeignFences(t *testing.T) {
	ctx := log.Testing(t)
	d1 := newTestDevice(ctx, t)
	defer d1.Destroy(ctx)
	d2 := newTestDevice(ctx, t)
	defer d2.Destroy(ctx)

	foreign := driver.CreateFence(ctx, d2, &vulkan.FenceCreateInfo{Flags: vulkan.FenceCreateSignaledBit})
	defer driver.DestroyFence(ctx, foreign.Handle())

	d1.ResetFences(ctx, []*driver.Fence{foreign})
	assert.For(ctx, "foreign untouched").ThatBoolean(foreign.Signaled()).IsTrue()

	d2.ResetFences(ctx, []*driver.Fence{foreign})
	assert.For(ctx, "owner reset").ThatBoolean(foreign.Signaled()).IsFalse()
}

func TestSemaphoreSignalUnsignal(t *testing.T) {
	ctx := log.Testing(t)

	s := driver.CreateSemaphore(ctx, nil)
	defer driver.DestroySemaphore(ctx, s.Handle())
	assert.For(ctx, "initial state").ThatBoolean(s.Signaled()).IsFalse()

	s.Signal(ctx)
	assert.For(ctx, "signaled").ThatBoolean(s.Signaled()).IsTrue()

	s.Unsignal(ctx)
	assert.For(ctx, "unsignaled").ThatBoolean(s.Signaled()).IsFalse()
}

func TestSemaphoreKeepsCreationFlags(t *testing.T) {
	ctx := log.Testing(t)

	s := driver.CreateSemaphore(ctx, &vulkan.SemaphoreCreateInfo{Flags: 1})
	defer driver.DestroySemaphore(ctx, s.Handle())
	assert.For(ctx, "flags").That(s.Flags()).Equals(vulkan.SemaphoreCreateFlags(1))

	empty := driver.CreateSemaphore(ctx, nil)
	defer driver.DestroySemaphore(ctx, empty.Handle())
	assert.For(ctx, "no flags").That(empty.Flags()).Equals(vulkan.SemaphoreCreateFlags(0))
}
