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

package icd

import (
	"context"

	"github.com/szx/vulkan-software-rasterizer/driver"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

// CreateImage creates an image on the device.
func CreateImage(ctx context.Context, device vulkan.Device, info *vulkan.ImageCreateInfo) (vulkan.Image, vulkan.Result) {
	d := driver.DeviceFromHandle(device)
	if d == nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	defer d.Release()
	return driver.CreateImage(ctx, d, info).Handle(), vulkan.Success
}

// DestroyImage destroys the image. Null is a no-op.
func DestroyImage(ctx context.Context, device vulkan.Device, image vulkan.Image) {
	if image == vulkan.NullHandle {
		return
	}
	driver.DestroyImage(ctx, image)
}

// CreateImageView creates a view of an image.
func CreateImageView(ctx context.Context, device vulkan.Device, info *vulkan.ImageViewCreateInfo) (vulkan.ImageView, vulkan.Result) {
	d := driver.DeviceFromHandle(device)
	if d == nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	defer d.Release()
	v, err := driver.CreateImageView(ctx, d, info)
	if err != nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	return v.Handle(), vulkan.Success
}

// DestroyImageView destroys the image view. Null is a no-op.
func DestroyImageView(ctx context.Context, device vulkan.Device, view vulkan.ImageView) {
	if view == vulkan.NullHandle {
		return
	}
	driver.DestroyImageView(ctx, view)
}

// CreateCommandPool creates a command pool on the device.
func CreateCommandPool(ctx context.Context, device vulkan.Device, info *vulkan.CommandPoolCreateInfo) (vulkan.CommandPool, vulkan.Result) {
	d := driver.DeviceFromHandle(device)
	if d == nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	defer d.Release()
	return driver.CreateCommandPool(ctx, d, info).Handle(), vulkan.Success
}

// DestroyCommandPool destroys the pool and frees its remaining buffers.
// Null is a no-op.
func DestroyCommandPool(ctx context.Context, device vulkan.Device, pool vulkan.CommandPool) {
	if pool == vulkan.NullHandle {
		return
	}
	driver.DestroyCommandPool(ctx, pool)
}

// ResetCommandPool returns every buffer in the pool to the initial state.
func ResetCommandPool(ctx context.Context, device vulkan.Device, pool vulkan.CommandPool) vulkan.Result {
	p, ok := driver.ResolveCommandPool(pool)
	if !ok {
		return vulkan.ErrDeviceLost
	}
	p.Reset(ctx)
	return vulkan.Success
}

// AllocateCommandBuffers creates command buffers from the pool named in
// info.
func AllocateCommandBuffers(ctx context.Context, device vulkan.Device, info *vulkan.CommandBufferAllocateInfo) ([]vulkan.CommandBuffer, vulkan.Result) {
	if info == nil {
		return nil, vulkan.ErrInitializationFailed
	}
	p, ok := driver.ResolveCommandPool(info.CommandPool)
	if !ok {
		return nil, vulkan.ErrInitializationFailed
	}
	buffers, err := p.Allocate(ctx, info.Level, info.CommandBufferCount)
	if err != nil {
		return nil, vulkan.ErrInitializationFailed
	}
	out := make([]vulkan.CommandBuffer, len(buffers))
	for i, cb := range buffers {
		out[i] = cb.Handle()
	}
	return out, vulkan.Success
}

// FreeCommandBuffers returns the buffers to their pool. Null buffer handles
// are skipped.
func FreeCommandBuffers(ctx context.Context, device vulkan.Device, pool vulkan.CommandPool, buffers []vulkan.CommandBuffer) {
	p, ok := driver.ResolveCommandPool(pool)
	if !ok {
		return
	}
	resolved := make([]*driver.CommandBuffer, 0, len(buffers))
	for _, h := range buffers {
		if cb, ok := driver.ResolveCommandBuffer(h); ok {
			resolved = append(resolved, cb)
		}
	}
	p.Free(ctx, resolved)
}
