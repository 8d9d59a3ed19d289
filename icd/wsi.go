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

// CreateSurface wraps a native window as a presentation surface.
func CreateSurface(ctx context.Context, instance vulkan.Instance, info *vulkan.SurfaceCreateInfo) (vulkan.SurfaceKHR, vulkan.Result) {
	i := driver.InstanceFromHandle(instance)
	if i == nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	defer i.Release()
	s, err := driver.CreateSurface(ctx, i, info)
	if err != nil {
		return vulkan.NullHandle, vulkan.ErrNativeWindowInUse
	}
	return s.Handle(), vulkan.Success
}

// DestroySurface destroys the surface. Null is a no-op.
func DestroySurface(ctx context.Context, instance vulkan.Instance, surface vulkan.SurfaceKHR) {
	if surface == vulkan.NullHandle {
		return
	}
	driver.DestroySurface(ctx, surface)
}

// GetPhysicalDeviceSurfaceSupport reports whether the queue family can
// present to the surface.
func GetPhysicalDeviceSurfaceSupport(physicalDevice vulkan.PhysicalDevice, queueFamilyIndex uint32, surface vulkan.SurfaceKHR) (bool, vulkan.Result) {
	if _, ok := driver.ResolveSurface(surface); !ok {
		return false, vulkan.ErrSurfaceLost
	}
	p := driver.PhysicalDeviceFromHandle(physicalDevice)
	defer p.Release()
	return p.SurfaceSupport(queueFamilyIndex, surface), vulkan.Success
}

// GetPhysicalDeviceSurfaceCapabilities reports the surface's presentation
// limits.
func GetPhysicalDeviceSurfaceCapabilities(physicalDevice vulkan.PhysicalDevice, surface vulkan.SurfaceKHR) (vulkan.SurfaceCapabilities, vulkan.Result) {
	if _, ok := driver.ResolveSurface(surface); !ok {
		return vulkan.SurfaceCapabilities{}, vulkan.ErrSurfaceLost
	}
	p := driver.PhysicalDeviceFromHandle(physicalDevice)
	defer p.Release()
	return p.SurfaceCapabilities(), vulkan.Success
}

// GetPhysicalDeviceSurfaceFormats lists the surface formats the adapter can
// present.
func GetPhysicalDeviceSurfaceFormats(physicalDevice vulkan.PhysicalDevice, surface vulkan.SurfaceKHR) ([]vulkan.SurfaceFormat, vulkan.Result) {
	if _, ok := driver.ResolveSurface(surface); !ok {
		return nil, vulkan.ErrSurfaceLost
	}
	p := driver.PhysicalDeviceFromHandle(physicalDevice)
	defer p.Release()
	return p.SurfaceFormats(), vulkan.Success
}

// GetPhysicalDeviceSurfacePresentModes lists the supported present modes.
func GetPhysicalDeviceSurfacePresentModes(physicalDevice vulkan.PhysicalDevice, surface vulkan.SurfaceKHR) ([]vulkan.PresentMode, vulkan.Result) {
	if _, ok := driver.ResolveSurface(surface); !ok {
		return nil, vulkan.ErrSurfaceLost
	}
	p := driver.PhysicalDeviceFromHandle(physicalDevice)
	defer p.Release()
	return p.PresentModes(), vulkan.Success
}

// CreateSwapchain creates a swapchain and its image ring on the device.
func CreateSwapchain(ctx context.Context, device vulkan.Device, info *vulkan.SwapchainCreateInfo) (vulkan.SwapchainKHR, vulkan.Result) {
	d := driver.DeviceFromHandle(device)
	if d == nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	defer d.Release()
	sc, err := driver.CreateSwapchain(ctx, d, info)
	if err != nil {
		return vulkan.NullHandle, vulkan.ErrSurfaceLost
	}
	return sc.Handle(), vulkan.Success
}

// DestroySwapchain destroys the swapchain and its images. Null is a no-op.
func DestroySwapchain(ctx context.Context, device vulkan.Device, swapchain vulkan.SwapchainKHR) {
	if swapchain == vulkan.NullHandle {
		return
	}
	driver.DestroySwapchain(ctx, swapchain)
}

// GetSwapchainImages lists the swapchain's presentable images.
func GetSwapchainImages(device vulkan.Device, swapchain vulkan.SwapchainKHR) ([]vulkan.Image, vulkan.Result) {
	sc, ok := driver.ResolveSwapchain(swapchain)
	if !ok {
		return nil, vulkan.ErrOutOfDate
	}
	images := sc.Images()
	out := make([]vulkan.Image, len(images))
	for i, img := range images {
		out[i] = img.Handle()
	}
	return out, vulkan.Success
}

// AcquireNextImage hands out the index of the next presentable image,
// signaling the given semaphore and fence if they are not null.
func AcquireNextImage(ctx context.Context, device vulkan.Device, swapchain vulkan.SwapchainKHR, timeout uint64, semaphore vulkan.Semaphore, fence vulkan.Fence) (uint32, vulkan.Result) {
	sc, ok := driver.ResolveSwapchain(swapchain)
	if !ok {
		return 0, vulkan.ErrOutOfDate
	}
	var sem *driver.Semaphore
	if semaphore != vulkan.NullHandle {
		if sem, ok = driver.ResolveSemaphore(semaphore); !ok {
			return 0, vulkan.ErrDeviceLost
		}
	}
	var f *driver.Fence
	if fence != vulkan.NullHandle {
		if f, ok = driver.ResolveFence(fence); !ok {
			return 0, vulkan.ErrDeviceLost
		}
	}
	return sc.AcquireNextImage(ctx, sem, f)
}
