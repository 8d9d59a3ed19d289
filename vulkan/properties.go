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

package vulkan

// Extent2D is a two dimensional size.
type Extent2D struct {
	Width  uint32
	Height uint32
}

// Extent3D is a three dimensional size.
type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// ExtensionProperties names one supported extension.
type ExtensionProperties struct {
	ExtensionName string
	SpecVersion   uint32
}

// PhysicalDeviceLimits is the subset of adapter limits this driver reports.
type PhysicalDeviceLimits struct {
	MaxImageDimension1D   uint32
	MaxImageDimension2D   uint32
	MaxImageDimension3D   uint32
	MaxFramebufferWidth   uint32
	MaxFramebufferHeight  uint32
	MaxViewports          uint32
	MaxColorAttachments   uint32
	MaxMemoryAllocations  uint32
	MaxSamplerAllocations uint32
}

// PhysicalDeviceProperties describes an adapter.
type PhysicalDeviceProperties struct {
	APIVersion        uint32
	DriverVersion     uint32
	VendorID          uint32
	DeviceID          uint32
	DeviceType        PhysicalDeviceType
	DeviceName        string
	PipelineCacheUUID [16]byte
	Limits            PhysicalDeviceLimits
}

// PhysicalDeviceFeatures is the set of optional features the adapter exposes.
// A software rasterizer advertises none of the optional hardware features.
type PhysicalDeviceFeatures struct {
	RobustBufferAccess bool
	FullDrawIndexU32   bool
	GeometryShader     bool
	TessellationShader bool
	SamplerAnisotropy  bool
	ShaderFloat64      bool
}

// MemoryType describes one memory type the adapter exposes.
type MemoryType struct {
	PropertyFlags uint32
	HeapIndex     uint32
}

// MemoryHeap describes one memory heap the adapter exposes.
type MemoryHeap struct {
	Size  uint64
	Flags uint32
}

// PhysicalDeviceMemoryProperties describes the adapter memory configuration.
type PhysicalDeviceMemoryProperties struct {
	MemoryTypes []MemoryType
	MemoryHeaps []MemoryHeap
}

// QueueFamilyProperties describes one queue family.
type QueueFamilyProperties struct {
	QueueFlags                  QueueFlags
	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity Extent3D
}

// FormatProperties describes the uses a format supports.
type FormatProperties struct {
	LinearTilingFeatures  FormatFeatureFlags
	OptimalTilingFeatures FormatFeatureFlags
	BufferFeatures        FormatFeatureFlags
}

// SurfaceCapabilities describes what a surface supports.
type SurfaceCapabilities struct {
	MinImageCount           uint32
	MaxImageCount           uint32
	CurrentExtent           Extent2D
	MinImageExtent          Extent2D
	MaxImageExtent          Extent2D
	MaxImageArrayLayers     uint32
	SupportedTransforms     SurfaceTransformFlags
	CurrentTransform        SurfaceTransformFlags
	SupportedCompositeAlpha CompositeAlphaFlags
	SupportedUsageFlags     ImageUsageFlags
}

// SurfaceFormat is one supported surface format and color space pair.
type SurfaceFormat struct {
	Format     Format
	ColorSpace ColorSpace
}
