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
	"sync"

	"github.com/pkg/errors"

	"github.com/szx/vulkan-software-rasterizer/core/fault"
	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

// ErrNoSwapchainInfo is returned when swapchain creation is given no
// create info.
const ErrNoSwapchainInfo = fault.Const("swapchain creation requires create info")

// Swapchain owns a fixed ring of presentable images for one surface.
type Swapchain struct {
	handle  vulkan.SwapchainKHR
	device  *LogicalDevice
	surface *Surface
	format  vulkan.Format
	extent  vulkan.Extent2D
	images  []*Image

	mu   sync.Mutex
	next uint32
}

func swapchainTable(r *registry) map[vulkan.SwapchainKHR]*Swapchain { return r.swapchains }

// CreateSwapchain builds and registers a swapchain together with its image
// ring. The images are owned by the swapchain and destroyed with it.
func CreateSwapchain(ctx context.Context, device *LogicalDevice, info *vulkan.SwapchainCreateInfo) (*Swapchain, error) {
	if info == nil {
		return nil, ErrNoSwapchainInfo
	}
	surface, ok := ResolveSurface(info.Surface)
	if !ok {
		return nil, errors.Errorf("swapchain surface %#x is not alive", uint64(info.Surface))
	}
	count := info.MinImageCount
	if count == 0 {
		count = 2
	}
	sc := &Swapchain{
		device:  device,
		surface: surface,
		format:  info.ImageFormat,
		extent:  info.ImageExtent,
	}
	for i := uint32(0); i < count; i++ {
		sc.images = append(sc.images, CreateImage(ctx, device, &vulkan.ImageCreateInfo{
			ImageType: vulkan.ImageType2D,
			Format:    info.ImageFormat,
			Extent: vulkan.Extent3D{
				Width:  info.ImageExtent.Width,
				Height: info.ImageExtent.Height,
				Depth:  1,
			},
			MipLevels:   1,
			ArrayLayers: 1,
			Usage:       info.ImageUsage,
		}))
	}
	register(swapchainTable, sc, func(h vulkan.SwapchainKHR) { sc.handle = h })
	log.D(ctx, "new Swapchain %#x images=%d", uint64(sc.handle), len(sc.images))
	return sc, nil
}

// ResolveSwapchain returns the live swapchain registered under handle.
func ResolveSwapchain(handle vulkan.SwapchainKHR) (*Swapchain, bool) {
	return resolve(swapchainTable, handle)
}

// DestroySwapchain unregisters the swapchain named by handle and its image
// ring.
func DestroySwapchain(ctx context.Context, handle vulkan.SwapchainKHR) bool {
	sc, ok := unregister(swapchainTable, handle)
	if !ok {
		return false
	}
	for _, img := range sc.images {
		DestroyImage(ctx, img.Handle())
	}
	log.D(ctx, "destroy Swapchain %#x", uint64(sc.handle))
	return true
}

// Handle returns the swapchain's registry identity.
func (sc *Swapchain) Handle() vulkan.SwapchainKHR { return sc.handle }

// Device returns the logical device the swapchain was created on.
func (sc *Swapchain) Device() *LogicalDevice { return sc.device }

// Surface returns the surface the swapchain presents to.
func (sc *Swapchain) Surface() *Surface { return sc.surface }

// Images returns the swapchain's image ring in acquisition order.
func (sc *Swapchain) Images() []*Image { return sc.images }

// AcquireNextImage hands out the index of the next presentable image.
// Images are handed out round-robin; with no queue work in flight every
// image is always ready, so acquisition never blocks.
func (sc *Swapchain) AcquireNextImage(ctx context.Context, semaphore *Semaphore, fence *Fence) (uint32, vulkan.Result) {
	sc.mu.Lock()
	index := sc.next
	sc.next = (sc.next + 1) % uint32(len(sc.images))
	sc.mu.Unlock()

	if semaphore != nil {
		semaphore.Signal(ctx)
	}
	if fence != nil {
		fence.Signal(ctx)
	}
	log.D(ctx, "Swapchain %#x acquired image %d", uint64(sc.handle), index)
	return index, vulkan.Success
}

// Present queues the image at index for display. There is no display yet,
// so presentation completes immediately.
func (sc *Swapchain) Present(ctx context.Context, index uint32) vulkan.Result {
	if index >= uint32(len(sc.images)) {
		return vulkan.ErrOutOfDate
	}
	log.D(ctx, "Swapchain %#x present image %d", uint64(sc.handle), index)
	return vulkan.Success
}
