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

// Package driver implements the object lifetime core of a software Vulkan
// driver.
//
// All live objects are owned by a single process-wide registry.
// Dispatchable objects (Instance, PhysicalDevice, LogicalDevice, Queue)
// encode their allocation address as the handle and carry an explicit
// reference count of outstanding borrows. Non-dispatchable objects (Fence,
// Semaphore, Surface, Swapchain and the rest) are keyed by a process-unique
// 64 bit identity that is never reused; resolving one after destruction
// fails cleanly instead of faulting.
//
// The registry lock guards membership only. Object content is guarded by
// each object's own lock, taken strictly after the registry lock has been
// released, so no wait ever blocks the registry.
package driver
