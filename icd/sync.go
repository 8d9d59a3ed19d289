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

// CreateFence creates a fence on the device.
func CreateFence(ctx context.Context, device vulkan.Device, info *vulkan.FenceCreateInfo) (vulkan.Fence, vulkan.Result) {
	d := driver.DeviceFromHandle(device)
	if d == nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	defer d.Release()
	return driver.CreateFence(ctx, d, info).Handle(), vulkan.Success
}

// DestroyFence destroys the fence. Null is a no-op.
func DestroyFence(ctx context.Context, device vulkan.Device, fence vulkan.Fence) {
	if fence == vulkan.NullHandle {
		return
	}
	driver.DestroyFence(ctx, fence)
}

// GetFenceStatus polls the fence without blocking.
func GetFenceStatus(device vulkan.Device, fence vulkan.Fence) vulkan.Result {
	f, ok := driver.ResolveFence(fence)
	if !ok {
		return vulkan.ErrDeviceLost
	}
	if f.Signaled() {
		return vulkan.Success
	}
	return vulkan.NotReady
}

// ResetFences returns the fences to the unsignaled state.
func ResetFences(ctx context.Context, device vulkan.Device, fences []vulkan.Fence) vulkan.Result {
	d := driver.DeviceFromHandle(device)
	if d == nil {
		return vulkan.ErrDeviceLost
	}
	defer d.Release()
	d.ResetFences(ctx, resolveFences(fences))
	return vulkan.Success
}

// WaitForFences blocks until the fences signal or timeout nanoseconds pass.
func WaitForFences(ctx context.Context, device vulkan.Device, fences []vulkan.Fence, waitAll bool, timeout uint64) vulkan.Result {
	d := driver.DeviceFromHandle(device)
	if d == nil {
		return vulkan.ErrDeviceLost
	}
	defer d.Release()
	return d.WaitForFences(ctx, resolveFences(fences), waitAll, timeout)
}

func resolveFences(handles []vulkan.Fence) []*driver.Fence {
	out := make([]*driver.Fence, 0, len(handles))
	for _, h := range handles {
		if f, ok := driver.ResolveFence(h); ok {
			out = append(out, f)
		}
	}
	return out
}

// CreateSemaphore creates a semaphore on the device.
func CreateSemaphore(ctx context.Context, device vulkan.Device, info *vulkan.SemaphoreCreateInfo) (vulkan.Semaphore, vulkan.Result) {
	d := driver.DeviceFromHandle(device)
	if d == nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	defer d.Release()
	return driver.CreateSemaphore(ctx, info).Handle(), vulkan.Success
}

// DestroySemaphore destroys the semaphore. Null is a no-op.
func DestroySemaphore(ctx context.Context, device vulkan.Device, semaphore vulkan.Semaphore) {
	if semaphore == vulkan.NullHandle {
		return
	}
	driver.DestroySemaphore(ctx, semaphore)
}
