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

// Package icd exposes the driver as C-style entry points: free functions
// taking and returning vulkan scalar handles and Results. Every creation
// completes registration before returning, and every destroy accepts the
// null handle as a no-op.
package icd

import (
	"context"

	"github.com/szx/vulkan-software-rasterizer/driver"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

// CreateInstance brings the driver up for one application.
func CreateInstance(ctx context.Context, info *vulkan.InstanceCreateInfo) (vulkan.Instance, vulkan.Result) {
	i := driver.NewInstance(ctx, info)
	return i.Handle(), vulkan.Success
}

// DestroyInstance tears down the instance. Null is a no-op.
func DestroyInstance(ctx context.Context, instance vulkan.Instance) {
	i := driver.InstanceFromHandle(instance)
	if i == nil {
		return
	}
	i.Release()
	i.Destroy(ctx)
}

// EnumerateInstanceExtensionProperties lists the instance extensions the
// driver implements.
func EnumerateInstanceExtensionProperties() ([]vulkan.ExtensionProperties, vulkan.Result) {
	return driver.InstanceExtensionProperties(), vulkan.Success
}

// EnumeratePhysicalDevices lists the adapters visible to the instance.
func EnumeratePhysicalDevices(ctx context.Context, instance vulkan.Instance) ([]vulkan.PhysicalDevice, vulkan.Result) {
	i := driver.InstanceFromHandle(instance)
	if i == nil {
		return nil, vulkan.ErrInitializationFailed
	}
	defer i.Release()
	p := driver.GetPhysicalDevice(ctx)
	return []vulkan.PhysicalDevice{p.Handle()}, vulkan.Success
}

// GetPhysicalDeviceProperties reports the adapter's static properties.
func GetPhysicalDeviceProperties(physicalDevice vulkan.PhysicalDevice) vulkan.PhysicalDeviceProperties {
	p := driver.PhysicalDeviceFromHandle(physicalDevice)
	defer p.Release()
	return p.Properties()
}

// GetPhysicalDeviceFeatures reports the adapter's feature support.
func GetPhysicalDeviceFeatures(physicalDevice vulkan.PhysicalDevice) vulkan.PhysicalDeviceFeatures {
	p := driver.PhysicalDeviceFromHandle(physicalDevice)
	defer p.Release()
	return p.Features()
}

// GetPhysicalDeviceMemoryProperties reports the adapter's memory layout.
func GetPhysicalDeviceMemoryProperties(physicalDevice vulkan.PhysicalDevice) vulkan.PhysicalDeviceMemoryProperties {
	p := driver.PhysicalDeviceFromHandle(physicalDevice)
	defer p.Release()
	return p.MemoryProperties()
}

// GetPhysicalDeviceQueueFamilyProperties reports the adapter's queue
// families.
func GetPhysicalDeviceQueueFamilyProperties(physicalDevice vulkan.PhysicalDevice) []vulkan.QueueFamilyProperties {
	p := driver.PhysicalDeviceFromHandle(physicalDevice)
	defer p.Release()
	return p.QueueFamilyProperties()
}

// GetPhysicalDeviceFormatProperties reports the adapter's support for
// format.
func GetPhysicalDeviceFormatProperties(physicalDevice vulkan.PhysicalDevice, format vulkan.Format) vulkan.FormatProperties {
	p := driver.PhysicalDeviceFromHandle(physicalDevice)
	defer p.Release()
	return p.FormatProperties(format)
}

// EnumerateDeviceExtensionProperties lists the device extensions the driver
// implements.
func EnumerateDeviceExtensionProperties(physicalDevice vulkan.PhysicalDevice) ([]vulkan.ExtensionProperties, vulkan.Result) {
	p := driver.PhysicalDeviceFromHandle(physicalDevice)
	defer p.Release()
	return p.ExtensionProperties(), vulkan.Success
}

// CreateDevice creates a logical device on the adapter.
func CreateDevice(ctx context.Context, physicalDevice vulkan.PhysicalDevice, info *vulkan.DeviceCreateInfo) (vulkan.Device, vulkan.Result) {
	p := driver.PhysicalDeviceFromHandle(physicalDevice)
	if p == nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	defer p.Release()
	d, err := driver.NewLogicalDevice(ctx, p, info)
	if err != nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	return d.Handle(), vulkan.Success
}

// DestroyDevice tears down the device and its queue. Null is a no-op.
func DestroyDevice(ctx context.Context, device vulkan.Device) {
	d := driver.DeviceFromHandle(device)
	if d == nil {
		return
	}
	d.Release()
	d.Destroy(ctx)
}

// GetDeviceQueue returns the queue at the given family and index.
func GetDeviceQueue(device vulkan.Device, queueFamilyIndex, queueIndex uint32) vulkan.Queue {
	d := driver.DeviceFromHandle(device)
	defer d.Release()
	return d.Queue(queueFamilyIndex, queueIndex).Handle()
}

// DeviceWaitIdle blocks until the device has no work in flight.
func DeviceWaitIdle(ctx context.Context, device vulkan.Device) vulkan.Result {
	d := driver.DeviceFromHandle(device)
	if d == nil {
		return vulkan.ErrDeviceLost
	}
	defer d.Release()
	d.WaitIdle(ctx)
	return vulkan.Success
}
