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

// ApplicationInfo describes the application creating the instance.
type ApplicationInfo struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         uint32
}

// InstanceCreateInfo is the argument to CreateInstance.
type InstanceCreateInfo struct {
	ApplicationInfo   *ApplicationInfo
	EnabledLayers     []string
	EnabledExtensions []string
}

// DeviceQueueCreateInfo requests queues from one queue family.
type DeviceQueueCreateInfo struct {
	Flags            DeviceQueueCreateFlags
	QueueFamilyIndex uint32
	QueuePriorities  []float32
}

// DeviceCreateInfo is the argument to CreateDevice.
type DeviceCreateInfo struct {
	QueueCreateInfos  []DeviceQueueCreateInfo
	EnabledExtensions []string
	EnabledFeatures   *PhysicalDeviceFeatures
}

// FenceCreateInfo is the argument to CreateFence.
type FenceCreateInfo struct {
	Flags FenceCreateFlags
}

// SemaphoreCreateInfo is the argument to CreateSemaphore.
type SemaphoreCreateInfo struct {
	Flags SemaphoreCreateFlags
}

// SurfaceCreateInfo is the argument to CreateSurface. The connection and
// window fields identify the native window system objects backing the
// surface; the driver treats them as opaque.
type SurfaceCreateInfo struct {
	Connection uintptr
	Window     uintptr
}

// SwapchainCreateInfo is the argument to CreateSwapchain.
type SwapchainCreateInfo struct {
	Surface         SurfaceKHR
	MinImageCount   uint32
	ImageFormat     Format
	ImageColorSpace ColorSpace
	ImageExtent     Extent2D
	ImageUsage      ImageUsageFlags
	PresentMode     PresentMode
	OldSwapchain    SwapchainKHR
}

// ImageCreateInfo is the argument to CreateImage.
type ImageCreateInfo struct {
	ImageType   ImageType
	Format      Format
	Extent      Extent3D
	MipLevels   uint32
	ArrayLayers uint32
	Usage       ImageUsageFlags
}

// ImageViewCreateInfo is the argument to CreateImageView.
type ImageViewCreateInfo struct {
	Image    Image
	ViewType ImageViewType
	Format   Format
}

// CommandPoolCreateInfo is the argument to CreateCommandPool.
type CommandPoolCreateInfo struct {
	Flags            CommandPoolCreateFlags
	QueueFamilyIndex uint32
}

// CommandBufferAllocateInfo is the argument to AllocateCommandBuffers.
type CommandBufferAllocateInfo struct {
	CommandPool        CommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

// PipelineLayoutCreateInfo is the argument to CreatePipelineLayout.
type PipelineLayoutCreateInfo struct {
	SetLayouts         []uint64
	PushConstantRanges []PushConstantRange
}

// PushConstantRange describes a span of push constant memory.
type PushConstantRange struct {
	Offset uint32
	Size   uint32
}

// RenderPassCreateInfo is the argument to CreateRenderPass.
type RenderPassCreateInfo struct {
	Attachments []AttachmentDescription
	Subpasses   []SubpassDescription
}

// AttachmentDescription describes one render pass attachment.
type AttachmentDescription struct {
	Format  Format
	Samples uint32
}

// SubpassDescription describes one render pass subpass.
type SubpassDescription struct {
	ColorAttachments []uint32
}

// ShaderModuleCreateInfo is the argument to CreateShaderModule.
type ShaderModuleCreateInfo struct {
	Code []uint32
}

// PipelineCacheCreateInfo is the argument to CreatePipelineCache.
type PipelineCacheCreateInfo struct {
	InitialData []byte
}
