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

	"github.com/szx/vulkan-software-rasterizer/core/assert"
	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/driver"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

func TestCommandBufferLifecycle(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	p := driver.CreateCommandPool(ctx, d, nil)
	defer driver.DestroyCommandPool(ctx, p.Handle())

	buffers, err := p.Allocate(ctx, vulkan.CommandBufferLevelPrimary, 1)
	assert.For(ctx, "Allocate").ThatError(err).Succeeded()
	cb := buffers[0]
	assert.For(ctx, "initial").That(cb.State()).Equals(driver.CommandBufferInitial)

	assert.For(ctx, "Begin").ThatError(cb.Begin(ctx)).Succeeded()
	assert.For(ctx, "recording").That(cb.State()).Equals(driver.CommandBufferRecording)
	assert.For(ctx, "double Begin").ThatError(cb.Begin(ctx)).Equals(driver.ErrAlreadyRecording)

	assert.For(ctx, "End").ThatError(cb.End(ctx)).Succeeded()
	assert.For(ctx, "executable").That(cb.State()).Equals(driver.CommandBufferExecutable)
	assert.For(ctx, "End without Begin").ThatError(cb.End(ctx)).Equals(driver.ErrNotRecording)

	cb.Reset(ctx)
	assert.For(ctx, "after reset").That(cb.State()).Equals(driver.CommandBufferInitial)
}

func TestAllocateNeedsCount(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	p := driver.CreateCommandPool(ctx, d, nil)
	defer driver.DestroyCommandPool(ctx, p.Handle())

	_, err := p.Allocate(ctx, vulkan.CommandBufferLevelPrimary, 0)
	assert.For(ctx, "zero count").ThatError(err).Equals(driver.ErrNoBuffersRequested)
}

func TestFreeReleasesBuffers(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	p := driver.CreateCommandPool(ctx, d, nil)
	defer driver.DestroyCommandPool(ctx, p.Handle())

	buffers, err := p.Allocate(ctx, vulkan.CommandBufferLevelPrimary, 2)
	assert.For(ctx, "Allocate").ThatError(err).Succeeded()

	h := buffers[0].Handle()
	p.Free(ctx, buffers[:1])
	_, ok := driver.ResolveCommandBuffer(h)
	assert.For(ctx, "freed buffer").ThatBoolean(ok).IsFalse()
	_, ok = driver.ResolveCommandBuffer(buffers[1].Handle())
	assert.For(ctx, "kept buffer").ThatBoolean(ok).IsTrue()
}

func TestPoolDestroyFreesBuffers(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	p := driver.CreateCommandPool(ctx, d, nil)
	buffers, err := p.Allocate(ctx, vulkan.CommandBufferLevelPrimary, 2)
	assert.For(ctx, "Allocate").ThatError(err).Succeeded()

	driver.DestroyCommandPool(ctx, p.Handle())
	for i, cb := range buffers {
		_, ok := driver.ResolveCommandBuffer(cb.Handle())
		assert.For(ctx, "buffer %d freed", i).ThatBoolean(ok).IsFalse()
	}
}

func TestPoolResetRewindsBuffers(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	p := driver.CreateCommandPool(ctx, d, nil)
	defer driver.DestroyCommandPool(ctx, p.Handle())

	buffers, err := p.Allocate(ctx, vulkan.CommandBufferLevelPrimary, 2)
	assert.For(ctx, "Allocate").ThatError(err).Succeeded()
	for _, cb := range buffers {
		assert.For(ctx, "Begin").ThatError(cb.Begin(ctx)).Succeeded()
	}

	p.Reset(ctx)
	for i, cb := range buffers {
		assert.For(ctx, "buffer %d rewound", i).That(cb.State()).Equals(driver.CommandBufferInitial)
	}
}
