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
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

// registry is the single owner of all live object storage.
//
// The registry mutex guards membership only. Object content is guarded by
// each object's own lock, taken strictly after the registry mutex has been
// released. The registry never performs I/O and never calls out while
// holding its lock.
type registry struct {
	mu sync.RWMutex

	// Dispatchable categories, in creation order.
	instances       []*Instance
	physicalDevices []*PhysicalDevice
	logicalDevices  []*LogicalDevice
	queues          []*Queue

	// Non-dispatchable categories, keyed by registry identity.
	fences          map[vulkan.Fence]*Fence
	semaphores      map[vulkan.Semaphore]*Semaphore
	surfaces        map[vulkan.SurfaceKHR]*Surface
	swapchains      map[vulkan.SwapchainKHR]*Swapchain
	images          map[vulkan.Image]*Image
	imageViews      map[vulkan.ImageView]*ImageView
	commandPools    map[vulkan.CommandPool]*CommandPool
	commandBuffers  map[vulkan.CommandBuffer]*CommandBuffer
	pipelineLayouts map[vulkan.PipelineLayout]*PipelineLayout
	renderPasses    map[vulkan.RenderPass]*RenderPass
	shaderModules   map[vulkan.ShaderModule]*ShaderModule
	pipelineCaches  map[vulkan.PipelineCache]*PipelineCache
}

var (
	globalOnce sync.Once
	globalReg  *registry

	// nextHandle produces non-dispatchable identities. The first identity
	// handed out is 1; zero stays the null handle. Identities are never
	// reused for the process lifetime.
	nextHandle atomic.Uint64
)

// global returns the process-wide registry, creating it on first use.
func global() *registry {
	globalOnce.Do(func() {
		globalReg = &registry{
			fences:          map[vulkan.Fence]*Fence{},
			semaphores:      map[vulkan.Semaphore]*Semaphore{},
			surfaces:        map[vulkan.SurfaceKHR]*Surface{},
			swapchains:      map[vulkan.SwapchainKHR]*Swapchain{},
			images:          map[vulkan.Image]*Image{},
			imageViews:      map[vulkan.ImageView]*ImageView{},
			commandPools:    map[vulkan.CommandPool]*CommandPool{},
			commandBuffers:  map[vulkan.CommandBuffer]*CommandBuffer{},
			pipelineLayouts: map[vulkan.PipelineLayout]*PipelineLayout{},
			renderPasses:    map[vulkan.RenderPass]*RenderPass{},
			shaderModules:   map[vulkan.ShaderModule]*ShaderModule{},
			pipelineCaches:  map[vulkan.PipelineCache]*PipelineCache{},
		}
	})
	return globalReg
}

// register inserts obj into its category table under a freshly allocated
// identity, and writes the identity back into the object through bind before
// the registry lock is released. A call site can therefore never observe an
// object whose own handle field disagrees with its registry key.
func register[H ~uint64, T any](table func(*registry) map[H]*T, obj *T, bind func(H)) H {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()
	h := H(nextHandle.Add(1))
	if _, clash := table(r)[h]; clash {
		panic(fmt.Sprintf("driver: handle %#x registered twice", uint64(h)))
	}
	table(r)[h] = obj
	bind(h)
	return h
}

// resolve returns the object registered under h, or false if h is the null
// handle or names an identity that was never registered or has since been
// unregistered.
func resolve[H ~uint64, T any](table func(*registry) map[H]*T, h H) (*T, bool) {
	if h == vulkan.NullHandle {
		return nil, false
	}
	r := global()
	r.mu.RLock()
	defer r.mu.RUnlock()
	obj, ok := table(r)[h]
	return obj, ok
}

// unregister removes the entry for h. At most one unregister of a given
// identity can ever succeed; later calls return false. References resolved
// before unregistration stay valid until their holders drop them, but the
// registry no longer tracks the object.
func unregister[H ~uint64, T any](table func(*registry) map[H]*T, h H) (*T, bool) {
	if h == vulkan.NullHandle {
		return nil, false
	}
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()
	obj, ok := table(r)[h]
	if ok {
		delete(table(r), h)
	}
	return obj, ok
}

// registerDispatchable appends obj to its category list. Dispatchable
// identity is the allocation itself, so no handle is allocated here.
func registerDispatchable[T any](list func(*registry) *[]*T, obj *T) {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()
	s := list(r)
	*s = append(*s, obj)
}

// unregisterDispatchable removes obj from its category list by identity
// scan. These categories are small and destruction is rare relative to
// resolution, so the scan is acceptable. A missing entry is a programming
// error and faults immediately.
func unregisterDispatchable[T any](list func(*registry) *[]*T, obj *T) {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()
	s := list(r)
	for i, o := range *s {
		if o == obj {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("driver: %T unregistered twice", obj))
}
