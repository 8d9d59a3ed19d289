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

// Package vulkan holds the caller-visible surface of the driver: handle
// scalars, status codes, flag bits and the plain structs passed across the
// Vulkan calling convention.
//
// The package is pure data. All behaviour lives in the driver and icd
// packages.
package vulkan

// Dispatchable handles hold the address of the driver object they name.
// They are produced once per object and remain valid until the matching
// destroy call returns.
type (
	// Instance is the handle to the driver connection.
	Instance uintptr
	// PhysicalDevice is the handle to a physical adapter.
	PhysicalDevice uintptr
	// Device is the handle to a logical device.
	Device uintptr
	// Queue is the handle to a device queue.
	Queue uintptr
)

// Non-dispatchable handles are opaque 64-bit identities resolved through the
// driver registry. Identities are never reused for the process lifetime.
// The zero value is the null handle for every category.
type (
	Fence          uint64
	Semaphore      uint64
	SurfaceKHR     uint64
	SwapchainKHR   uint64
	Image          uint64
	ImageView      uint64
	CommandPool    uint64
	CommandBuffer  uint64
	PipelineLayout uint64
	RenderPass     uint64
	ShaderModule   uint64
	PipelineCache  uint64
)

// NullHandle is the canonical null value for every handle category.
const NullHandle = 0

// TimeoutInfinite disables the timeout on a wait operation.
const TimeoutInfinite = ^uint64(0)
