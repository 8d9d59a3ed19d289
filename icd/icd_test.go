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

package icd_test

import (
	"context"
	"testing"
	"time"

	"github.com/szx/vulkan-software-rasterizer/core/assert"
	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/driver"
	"github.com/szx/vulkan-software-rasterizer/icd"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

func newTestDevice(ctx context.Context, t *testing.T) (vulkan.Instance, vulkan.Device) {
	instance, r := icd.CreateInstance(ctx, &vulkan.InstanceCreateInfo{
		ApplicationInfo: &vulkan.ApplicationInfo{ApplicationName: t.Name()},
	})
	assert.For(ctx, "CreateInstance").That(r).Equals(vulkan.Success)

	adapters, r := icd.EnumeratePhysicalDevices(ctx, instance)
	assert.For(ctx, "EnumeratePhysicalDevices").That(r).Equals(vulkan.Success)
	assert.For(ctx, "adapter count").ThatSlice(adapters).IsLength(1)

	device, r := icd.CreateDevice(ctx, adapters[0], &vulkan.DeviceCreateInfo{
		QueueCreateInfos: []vulkan.DeviceQueueCreateInfo{{QueuePriorities: []float32{1.0}}},
	})
	assert.For(ctx, "CreateDevice").That(r).Equals(vulkan.Success)
	return instance, device
}

func TestDeviceBringUp(t *testing.T) {
	ctx := log.Testing(t)
	instance, device := newTestDevice(ctx, t)
	defer icd.DestroyInstance(ctx, instance)
	defer icd.DestroyDevice(ctx, device)

	q1 := icd.GetDeviceQueue(device, 0, 0)
	q2 := icd.GetDeviceQueue(device, 0, 0)
	assert.For(ctx, "queue identity").That(q2).Equals(q1)

	assert.For(ctx, "DeviceWaitIdle").That(icd.DeviceWaitIdle(ctx, device)).Equals(vulkan.Success)
}

func TestFenceScenario(t *testing.T) {
	ctx := log.Testing(t)
	instance, device := newTestDevice(ctx, t)
	defer icd.DestroyInstance(ctx, instance)
	defer icd.DestroyDevice(ctx, device)

	fence, r := icd.CreateFence(ctx, device, nil)
	assert.For(ctx, "CreateFence").That(r).Equals(vulkan.Success)
	assert.For(ctx, "status").That(icd.GetFenceStatus(device, fence)).Equals(vulkan.NotReady)

	r = icd.WaitForFences(ctx, device, []vulkan.Fence{fence}, true, uint64(time.Millisecond))
	assert.For(ctx, "wait expires").That(r).Equals(vulkan.Timeout)

	f, ok := driver.ResolveFence(fence)
	assert.For(ctx, "resolve").ThatBoolean(ok).IsTrue()
	f.Signal(ctx)

	r = icd.WaitForFences(ctx, device, []vulkan.Fence{fence}, true, uint64(time.Second))
	assert.For(ctx, "wait satisfied").That(r).Equals(vulkan.Success)
	assert.For(ctx, "status").That(icd.GetFenceStatus(device, fence)).Equals(vulkan.Success)

	r = icd.ResetFences(ctx, device, []vulkan.Fence{fence})
	assert.For(ctx, "ResetFences").That(r).Equals(vulkan.Success)
	assert.For(ctx, "status").That(icd.GetFenceStatus(device, fence)).Equals(vulkan.NotReady)

	icd.DestroyFence(ctx, device, fence)
	assert.For(ctx, "status after destroy").That(icd.GetFenceStatus(device, fence)).Equals(vulkan.ErrDeviceLost)
}

func TestCreatedSignaledFence(t *testing.T) {
	ctx := log.Testing(t)
	instance, device := newTestDevice(ctx, t)
	defer icd.DestroyInstance(ctx, instance)
	defer icd.DestroyDevice(ctx, device)

	fence, r := icd.CreateFence(ctx, device, &vulkan.FenceCreateInfo{Flags: vulkan.FenceCreateSignaledBit})
	assert.For(ctx, "CreateFence").That(r).Equals(vulkan.Success)
	defer icd.DestroyFence(ctx, device, fence)
	assert.For(ctx, "status").That(icd.GetFenceStatus(device, fence)).Equals(vulkan.Success)

	r = icd.WaitForFences(ctx, device, []vulkan.Fence{fence}, true, 0)
	assert.For(ctx, "poll").That(r).Equals(vulkan.Success)

	icd.ResetFences(ctx, device, []vulkan.Fence{fence})
	assert.For(ctx, "status after reset").That(icd.GetFenceStatus(device, fence)).Equals(vulkan.NotReady)
}

func TestSwapchainScenario(t *testing.T) {
	ctx := log.Testing(t)
	instance, device := newTestDevice(ctx, t)
	defer icd.DestroyInstance(ctx, instance)
	defer icd.DestroyDevice(ctx, device)

	surface, r := icd.CreateSurface(ctx, instance, &vulkan.SurfaceCreateInfo{Connection: 1, Window: 2})
	assert.For(ctx, "CreateSurface").That(r).Equals(vulkan.Success)
	defer icd.DestroySurface(ctx, instance, surface)

	adapters, _ := icd.EnumeratePhysicalDevices(ctx, instance)
	supported, r := icd.GetPhysicalDeviceSurfaceSupport(adapters[0], 0, surface)
	assert.For(ctx, "surface support query").That(r).Equals(vulkan.Success)
	assert.For(ctx, "surface supported").ThatBoolean(supported).IsTrue()

	swapchain, r := icd.CreateSwapchain(ctx, device, &vulkan.SwapchainCreateInfo{
		Surface:       surface,
		MinImageCount: 2,
		ImageFormat:   vulkan.FormatR8G8B8A8Unorm,
		ImageExtent:   vulkan.Extent2D{Width: 640, Height: 480},
	})
	assert.For(ctx, "CreateSwapchain").That(r).Equals(vulkan.Success)

	images, r := icd.GetSwapchainImages(device, swapchain)
	assert.For(ctx, "GetSwapchainImages").That(r).Equals(vulkan.Success)
	assert.For(ctx, "image count").ThatSlice(images).IsLength(2)

	index, r := icd.AcquireNextImage(ctx, device, swapchain, vulkan.TimeoutInfinite, vulkan.NullHandle, vulkan.NullHandle)
	assert.For(ctx, "acquire").That(r).Equals(vulkan.Success)
	assert.For(ctx, "first index").ThatInteger(int(index)).Equals(0)

	icd.DestroySwapchain(ctx, device, swapchain)
	_, r = icd.GetSwapchainImages(device, swapchain)
	assert.For(ctx, "images after destroy").That(r).Equals(vulkan.ErrOutOfDate)
}

func TestNullDestroysAreNoOps(t *testing.T) {
	ctx := log.Testing(t)
	icd.DestroyInstance(ctx, vulkan.NullHandle)
	icd.DestroyDevice(ctx, vulkan.NullHandle)
	icd.DestroyFence(ctx, vulkan.NullHandle, vulkan.NullHandle)
	icd.DestroySemaphore(ctx, vulkan.NullHandle, vulkan.NullHandle)
	icd.DestroySurface(ctx, vulkan.NullHandle, vulkan.NullHandle)
	icd.DestroySwapchain(ctx, vulkan.NullHandle, vulkan.NullHandle)
	icd.DestroyImage(ctx, vulkan.NullHandle, vulkan.NullHandle)
	icd.DestroyImageView(ctx, vulkan.NullHandle, vulkan.NullHandle)
	icd.DestroyCommandPool(ctx, vulkan.NullHandle, vulkan.NullHandle)
	icd.DestroyPipelineLayout(ctx, vulkan.NullHandle, vulkan.NullHandle)
	icd.DestroyRenderPass(ctx, vulkan.NullHandle, vulkan.NullHandle)
	icd.DestroyShaderModule(ctx, vulkan.NullHandle, vulkan.NullHandle)
	icd.DestroyPipelineCache(ctx, vulkan.NullHandle, vulkan.NullHandle)
}

func TestCommandBuffersThroughEntryPoints(t *testing.T) {
	ctx := log.Testing(t)
	instance, device := newTestDevice(ctx, t)
	defer icd.DestroyInstance(ctx, instance)
	defer icd.DestroyDevice(ctx, device)

	pool, r := icd.CreateCommandPool(ctx, device, nil)
	assert.For(ctx, "CreateCommandPool").That(r).Equals(vulkan.Success)
	defer icd.DestroyCommandPool(ctx, device, pool)

	buffers, r := icd.AllocateCommandBuffers(ctx, device, &vulkan.CommandBufferAllocateInfo{
		CommandPool:        pool,
		Level:              vulkan.CommandBufferLevelPrimary,
		CommandBufferCount: 2,
	})
	assert.For(ctx, "AllocateCommandBuffers").That(r).Equals(vulkan.Success)
	assert.For(ctx, "buffer count").ThatSlice(buffers).IsLength(2)

	icd.FreeCommandBuffers(ctx, device, pool, buffers[:1])
	_, ok := driver.ResolveCommandBuffer(buffers[0])
	assert.For(ctx, "freed").ThatBoolean(ok).IsFalse()

	assert.For(ctx, "ResetCommandPool").That(icd.ResetCommandPool(ctx, device, pool)).Equals(vulkan.Success)
}

func TestShaderModuleThroughEntryPoints(t *testing.T) {
	ctx := log.Testing(t)
	instance, device := newTestDevice(ctx, t)
	defer icd.DestroyInstance(ctx, instance)
	defer icd.DestroyDevice(ctx, device)

	_, r := icd.CreateShaderModule(ctx, device, &vulkan.ShaderModuleCreateInfo{Code: []uint32{0xbad}})
	assert.For(ctx, "bad magic").That(r).Equals(vulkan.ErrInitializationFailed)

	module, r := icd.CreateShaderModule(ctx, device, &vulkan.ShaderModuleCreateInfo{
		Code: []uint32{0x07230203, 0x00010000, 0, 1, 0},
	})
	assert.For(ctx, "valid code").That(r).Equals(vulkan.Success)
	icd.DestroyShaderModule(ctx, device, module)
}
