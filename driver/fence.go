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

	"github.com/szx/vulkan-software-rasterizer/core/event/task"
	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

// Fence is a binary host synchronization primitive. It starts unsignaled
// unless created with vulkan.FenceCreateSignaledBit, is signaled by queue
// completion (or tests standing in for it), and is reset by the host.
type Fence struct {
	handle vulkan.Fence
	device *LogicalDevice
	flags  vulkan.FenceCreateFlags

	mu       sync.Mutex
	signaled bool
	fired    chan struct{}
}

func fenceTable(r *registry) map[vulkan.Fence]*Fence { return r.fences }

// CreateFence builds and registers a fence owned by device.
func CreateFence(ctx context.Context, device *LogicalDevice, info *vulkan.FenceCreateInfo) *Fence {
	f := &Fence{
		device: device,
		fired:  make(chan struct{}),
	}
	if info != nil {
		f.flags = info.Flags
	}
	if f.flags.Signaled() {
		f.signaled = true
		close(f.fired)
	}
	register(fenceTable, f, func(h vulkan.Fence) { f.handle = h })
	log.D(ctx, "new Fence %#x signaled=%v", uint64(f.handle), f.signaled)
	return f
}

// ResolveFence returns the live fence registered under handle.
func ResolveFence(handle vulkan.Fence) (*Fence, bool) {
	return resolve(fenceTable, handle)
}

// DestroyFence unregisters the fence named by handle. Destroying an already
// destroyed or never created fence reports false and has no other effect.
func DestroyFence(ctx context.Context, handle vulkan.Fence) bool {
	f, ok := unregister(fenceTable, handle)
	if !ok {
		return false
	}
	log.D(ctx, "destroy Fence %#x", uint64(f.handle))
	return true
}

// Handle returns the fence's registry identity.
func (f *Fence) Handle() vulkan.Fence { return f.handle }

// Device returns the logical device the fence was created on.
func (f *Fence) Device() *LogicalDevice { return f.device }

// Signaled reports the fence state at the instant of the call.
func (f *Fence) Signaled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.signaled
}

// Signal moves the fence to the signaled state and wakes all waiters.
// Signaling a signaled fence is a no-op.
func (f *Fence) Signal(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.signaled {
		return
	}
	f.signaled = true
	close(f.fired)
	log.D(ctx, "Fence %#x signaled", uint64(f.handle))
}

// Reset returns the fence to the unsignaled state. Waiters already observing
// the old signal are unaffected; later waiters see the fresh state.
// Resetting an unsignaled fence is a no-op.
func (f *Fence) Reset(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.signaled {
		return
	}
	f.signaled = false
	f.fired = make(chan struct{})
	log.D(ctx, "Fence %#x reset", uint64(f.handle))
}

// signal returns the channel that closes when the fence signals. The channel
// is replaced on Reset, so callers must re-fetch it per wait attempt.
func (f *Fence) signal() task.Signal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fired
}
