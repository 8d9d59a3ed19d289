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

// FenceCreateFlags is a bitmask of fence creation options.
type FenceCreateFlags uint32

const (
	// FenceCreateSignaledBit creates the fence already in the signaled state.
	FenceCreateSignaledBit FenceCreateFlags = 1 << 0
)

// Signaled returns true if the created-signaled bit is set.
func (f FenceCreateFlags) Signaled() bool { return f&FenceCreateSignaledBit != 0 }

// SemaphoreCreateFlags is a bitmask of semaphore creation options.
// It is reserved for future use and must currently be zero.
type SemaphoreCreateFlags uint32

// DeviceQueueCreateFlags is a bitmask of queue creation options.
type DeviceQueueCreateFlags uint32

// QueueFlags is a bitmask of queue family capabilities.
type QueueFlags uint32

const (
	QueueGraphicsBit QueueFlags = 1 << 0
	QueueComputeBit  QueueFlags = 1 << 1
	QueueTransferBit QueueFlags = 1 << 2
)

// Format is a pixel or texel data layout.
type Format uint32

const (
	FormatUndefined Format = 0
	FormatR8G8B8A8Unorm Format = 37
	FormatR8G8B8A8Srgb  Format = 43
	FormatB8G8R8A8Unorm Format = 44
	FormatB8G8R8A8Srgb  Format = 50
	FormatD32Sfloat     Format = 126
)

// FormatFeatureFlags is a bitmask of the uses a format supports.
type FormatFeatureFlags uint32

const (
	FormatFeatureSampledImageBit    FormatFeatureFlags = 1 << 0
	FormatFeatureColorAttachmentBit FormatFeatureFlags = 1 << 7
	FormatFeatureBlitSrcBit         FormatFeatureFlags = 1 << 10
	FormatFeatureBlitDstBit         FormatFeatureFlags = 1 << 11
)

// ImageUsageFlags is a bitmask of intended image uses.
type ImageUsageFlags uint32

const (
	ImageUsageTransferSrcBit     ImageUsageFlags = 1 << 0
	ImageUsageTransferDstBit     ImageUsageFlags = 1 << 1
	ImageUsageSampledBit         ImageUsageFlags = 1 << 2
	ImageUsageColorAttachmentBit ImageUsageFlags = 1 << 4
)

// ImageType is the dimensionality of an image.
type ImageType uint32

const (
	ImageType1D ImageType = 0
	ImageType2D ImageType = 1
	ImageType3D ImageType = 2
)

// ImageViewType is the dimensionality of an image view.
type ImageViewType uint32

const (
	ImageViewType1D ImageViewType = 0
	ImageViewType2D ImageViewType = 1
	ImageViewType3D ImageViewType = 2
)

// ColorSpace describes how surface pixel values are interpreted.
type ColorSpace uint32

const (
	ColorSpaceSrgbNonlinear ColorSpace = 0
)

// PresentMode describes when rendered images are shown on a surface.
type PresentMode uint32

const (
	PresentModeImmediate PresentMode = 0
	PresentModeMailbox   PresentMode = 1
	PresentModeFifo      PresentMode = 2
)

// SurfaceTransformFlags is a bitmask of supported presentation transforms.
type SurfaceTransformFlags uint32

const (
	SurfaceTransformIdentityBit SurfaceTransformFlags = 1 << 0
)

// CompositeAlphaFlags is a bitmask of supported alpha compositing modes.
type CompositeAlphaFlags uint32

const (
	CompositeAlphaOpaqueBit CompositeAlphaFlags = 1 << 0
)

// CommandPoolCreateFlags is a bitmask of command pool creation options.
type CommandPoolCreateFlags uint32

const (
	CommandPoolCreateTransientBit          CommandPoolCreateFlags = 1 << 0
	CommandPoolCreateResetCommandBufferBit CommandPoolCreateFlags = 1 << 1
)

// CommandBufferLevel selects between primary and secondary command buffers.
type CommandBufferLevel uint32

const (
	CommandBufferLevelPrimary   CommandBufferLevel = 0
	CommandBufferLevelSecondary CommandBufferLevel = 1
)

// PhysicalDeviceType classifies an adapter.
type PhysicalDeviceType uint32

const (
	PhysicalDeviceTypeOther         PhysicalDeviceType = 0
	PhysicalDeviceTypeIntegratedGPU PhysicalDeviceType = 1
	PhysicalDeviceTypeDiscreteGPU   PhysicalDeviceType = 2
	PhysicalDeviceTypeVirtualGPU    PhysicalDeviceType = 3
	PhysicalDeviceTypeCPU           PhysicalDeviceType = 4
)
