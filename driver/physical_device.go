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

package driver

import (
	"context"

	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

// PhysicalDevice represents the one software adapter this driver exposes.
// It performs rendering operations.
type PhysicalDevice struct {
	refcount
	deviceName string
}

func physicalDeviceList(r *registry) *[]*PhysicalDevice { return &r.physicalDevices }

// PhysicalDeviceCount is the number of adapters the driver exposes.
const PhysicalDeviceCount = 1

// GetPhysicalDevice returns the shared adapter object, creating and
// registering it on first request. Re-requesting yields the same object.
// The returned device is a borrowed view of the registry's entry; callers
// that hold it across calls must go through PhysicalDeviceFromHandle.
func GetPhysicalDevice(ctx context.Context) *PhysicalDevice {
	r := global()
	r.mu.Lock()
	created := false
	if len(r.physicalDevices) < PhysicalDeviceCount {
		r.physicalDevices = append(r.physicalDevices, &PhysicalDevice{
			deviceName: DriverName + " physical device",
		})
		created = true
	}
	p := r.physicalDevices[len(r.physicalDevices)-1]
	r.mu.Unlock()
	if created {
		log.I(ctx, "new PhysicalDevice")
	}
	return p
}

// Handle encodes the physical device as its dispatchable handle.
func (p *PhysicalDevice) Handle() vulkan.PhysicalDevice {
	return vulkan.PhysicalDevice(handleOf(p))
}

// PhysicalDeviceFromHandle decodes handle and takes a reference on the
// physical device. The caller must Release the returned device.
func PhysicalDeviceFromHandle(handle vulkan.PhysicalDevice) *PhysicalDevice {
	if handle == vulkan.NullHandle {
		return nil
	}
	p := objectAt[PhysicalDevice](uintptr(handle))
	p.pin()
	return p
}

// Properties reports the static adapter properties.
func (p *PhysicalDevice) Properties() vulkan.PhysicalDeviceProperties {
	return vulkan.PhysicalDeviceProperties{
		APIVersion:    0,
		DriverVersion: 0,
		VendorID:      0,
		DeviceID:      0,
		DeviceType:    vulkan.PhysicalDeviceTypeCPU,
		DeviceName:    p.deviceName,
		PipelineCacheUUID: [16]byte{
			0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
			0x08, 0x09, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15,
		},
		Limits: vulkan.PhysicalDeviceLimits{
			MaxImageDimension1D:  16384,
			MaxImageDimension2D:  16384,
			MaxImageDimension3D:  2048,
			MaxFramebufferWidth:  16384,
			MaxFramebufferHeight: 16384,
			MaxViewports:         1,
			MaxColorAttachments:  4,
		},
	}
}

// Features reports the optional features the adapter implements.
// A software rasterizer advertises none.
func (p *PhysicalDevice) Features() vulkan.PhysicalDeviceFeatures {
	return vulkan.PhysicalDeviceFeatures{}
}

// MemoryProperties reports the adapter memory configuration: a single
// host-local heap.
func (p *PhysicalDevice) MemoryProperties() vulkan.PhysicalDeviceMemoryProperties {
	return vulkan.PhysicalDeviceMemoryProperties{
		MemoryTypes: []vulkan.MemoryType{{PropertyFlags: 0, HeapIndex: 0}},
		MemoryHeaps: []vulkan.MemoryHeap{{Size: 1 << 30}},
	}
}

// QueueFamilyProperties reports the adapter queue families.
// The single family must support both graphics and compute operations.
func (p *PhysicalDevice) QueueFamilyProperties() []vulkan.QueueFamilyProperties {
	return []vulkan.QueueFamilyProperties{{
		QueueFlags: vulkan.QueueGraphicsBit | vulkan.QueueComputeBit,
		QueueCount: 1,
	}}
}

// FormatProperties reports the uses the adapter supports for format.
func (p *PhysicalDevice) FormatProperties(format vulkan.Format) vulkan.FormatProperties {
	switch format {
	case vulkan.FormatR8G8B8A8Unorm, vulkan.FormatR8G8B8A8Srgb:
		return vulkan.FormatProperties{
			OptimalTilingFeatures: vulkan.FormatFeatureSampledImageBit |
				vulkan.FormatFeatureColorAttachmentBit,
		}
	default:
		return vulkan.FormatProperties{}
	}
}

// ExtensionProperties reports the device-level extensions this driver
// implements.
func (p *PhysicalDevice) ExtensionProperties() []vulkan.ExtensionProperties {
	return []vulkan.ExtensionProperties{
		{ExtensionName: "VK_KHR_swapchain", SpecVersion: 70},
	}
}

// SurfaceSupport reports whether the queue family can present to surface.
func (p *PhysicalDevice) SurfaceSupport(queueFamilyIndex uint32, surface vulkan.SurfaceKHR) bool {
	return queueFamilyIndex == 0
}

// SurfaceCapabilities reports what any surface supports on this adapter.
func (p *PhysicalDevice) SurfaceCapabilities() vulkan.SurfaceCapabilities {
	return vulkan.SurfaceCapabilities{
		MinImageCount:           1,
		MaxImageCount:           2,
		CurrentExtent:           vulkan.Extent2D{Width: 0xFFFFFFFF, Height: 0xFFFFFFFF},
		MaxImageExtent:          vulkan.Extent2D{Width: 16384, Height: 16384},
		MaxImageArrayLayers:     1,
		SupportedTransforms:     vulkan.SurfaceTransformIdentityBit,
		CurrentTransform:        vulkan.SurfaceTransformIdentityBit,
		SupportedCompositeAlpha: vulkan.CompositeAlphaOpaqueBit,
		SupportedUsageFlags:     vulkan.ImageUsageColorAttachmentBit,
	}
}

// SurfaceFormats reports the supported surface formats.
func (p *PhysicalDevice) SurfaceFormats() []vulkan.SurfaceFormat {
	return []vulkan.SurfaceFormat{
		{Format: vulkan.FormatR8G8B8A8Unorm, ColorSpace: vulkan.ColorSpaceSrgbNonlinear},
		{Format: vulkan.FormatR8G8B8A8Srgb, ColorSpace: vulkan.ColorSpaceSrgbNonlinear},
	}
}

// PresentModes reports the supported presentation modes.
func (p *PhysicalDevice) PresentModes() []vulkan.PresentMode {
	return []vulkan.PresentMode{vulkan.PresentModeFifo}
}
