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

	"github.com/szx/vulkan-software-rasterizer/core/fault"
	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

const (
	// ErrNoBuffersRequested is returned by a zero-count allocation.
	ErrNoBuffersRequested = fault.Const("command buffer allocation requires a non-zero count")
	// ErrAlreadyRecording is returned by Begin on a recording buffer.
	ErrAlreadyRecording = fault.Const("command buffer is already recording")
	// ErrNotRecording is returned by End on a buffer that is not recording.
	ErrNotRecording = fault.Const("command buffer is not recording")
)

// CommandPool owns the command buffers allocated from it. Destroying the
// pool frees every buffer still allocated.
type CommandPool struct {
	handle      vulkan.CommandPool
	device      *LogicalDevice
	familyIndex uint32

	mu      sync.Mutex
	buffers []*CommandBuffer
}

func commandPoolTable(r *registry) map[vulkan.CommandPool]*CommandPool { return r.commandPools }

// CreateCommandPool builds and registers a command pool owned by device.
func CreateCommandPool(ctx context.Context, device *LogicalDevice, info *vulkan.CommandPoolCreateInfo) *CommandPool {
	p := &CommandPool{device: device}
	if info != nil {
		p.familyIndex = info.QueueFamilyIndex
	}
	register(commandPoolTable, p, func(h vulkan.CommandPool) { p.handle = h })
	log.D(ctx, "new CommandPool %#x", uint64(p.handle))
	return p
}

// ResolveCommandPool returns the live command pool registered under handle.
func ResolveCommandPool(handle vulkan.CommandPool) (*CommandPool, bool) {
	return resolve(commandPoolTable, handle)
}

// DestroyCommandPool unregisters the pool named by handle and frees all of
// its remaining command buffers.
func DestroyCommandPool(ctx context.Context, handle vulkan.CommandPool) bool {
	p, ok := unregister(commandPoolTable, handle)
	if !ok {
		return false
	}
	p.mu.Lock()
	buffers := p.buffers
	p.buffers = nil
	p.mu.Unlock()
	for _, cb := range buffers {
		unregister(commandBufferTable, cb.handle)
	}
	log.D(ctx, "destroy CommandPool %#x buffers=%d", uint64(p.handle), len(buffers))
	return true
}

// Handle returns the pool's registry identity.
func (p *CommandPool) Handle() vulkan.CommandPool { return p.handle }

// Device returns the logical device the pool was created on.
func (p *CommandPool) Device() *LogicalDevice { return p.device }

// Allocate creates count command buffers from the pool.
func (p *CommandPool) Allocate(ctx context.Context, level vulkan.CommandBufferLevel, count uint32) ([]*CommandBuffer, error) {
	if count == 0 {
		return nil, ErrNoBuffersRequested
	}
	out := make([]*CommandBuffer, 0, count)
	for i := uint32(0); i < count; i++ {
		cb := &CommandBuffer{pool: p, level: level}
		register(commandBufferTable, cb, func(h vulkan.CommandBuffer) { cb.handle = h })
		out = append(out, cb)
	}
	p.mu.Lock()
	p.buffers = append(p.buffers, out...)
	p.mu.Unlock()
	log.D(ctx, "CommandPool %#x allocated %d buffers", uint64(p.handle), count)
	return out, nil
}

// Free returns the given command buffers to the pool. Buffers not allocated
// from this pool are silently skipped.
func (p *CommandPool) Free(ctx context.Context, buffers []*CommandBuffer) {
	p.mu.Lock()
	kept := p.buffers[:0]
	freed := 0
	for _, owned := range p.buffers {
		remove := false
		for _, cb := range buffers {
			if cb == owned {
				remove = true
				break
			}
		}
		if remove {
			freed++
		} else {
			kept = append(kept, owned)
		}
	}
	p.buffers = kept
	p.mu.Unlock()
	for _, cb := range buffers {
		if cb != nil && cb.pool == p {
			unregister(commandBufferTable, cb.handle)
		}
	}
	log.D(ctx, "CommandPool %#x freed %d buffers", uint64(p.handle), freed)
}

// Reset returns every buffer in the pool to the initial state.
func (p *CommandPool) Reset(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, cb := range p.buffers {
		cb.mu.Lock()
		cb.reset()
		cb.mu.Unlock()
	}
	log.D(ctx, "CommandPool %#x reset", uint64(p.handle))
}

// CommandBufferState tracks the recording lifecycle of a command buffer.
type CommandBufferState int

const (
	// CommandBufferInitial is the state after allocation or reset.
	CommandBufferInitial CommandBufferState = iota
	// CommandBufferRecording is the state between Begin and End.
	CommandBufferRecording
	// CommandBufferExecutable is the state after End.
	CommandBufferExecutable
)

// CommandBuffer records work for later submission to a queue.
type CommandBuffer struct {
	handle vulkan.CommandBuffer
	pool   *CommandPool
	level  vulkan.CommandBufferLevel

	mu    sync.Mutex
	state CommandBufferState
}

func commandBufferTable(r *registry) map[vulkan.CommandBuffer]*CommandBuffer {
	return r.commandBuffers
}

// ResolveCommandBuffer returns the live command buffer registered under
// handle.
func ResolveCommandBuffer(handle vulkan.CommandBuffer) (*CommandBuffer, bool) {
	return resolve(commandBufferTable, handle)
}

// Handle returns the buffer's registry identity.
func (cb *CommandBuffer) Handle() vulkan.CommandBuffer { return cb.handle }

// Pool returns the pool the buffer was allocated from.
func (cb *CommandBuffer) Pool() *CommandPool { return cb.pool }

// Begin moves the buffer into the recording state.
func (cb *CommandBuffer) Begin(ctx context.Context) error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state == CommandBufferRecording {
		return ErrAlreadyRecording
	}
	cb.state = CommandBufferRecording
	log.D(ctx, "CommandBuffer %#x begin", uint64(cb.handle))
	return nil
}

// End moves the buffer from recording to executable.
func (cb *CommandBuffer) End(ctx context.Context) error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state != CommandBufferRecording {
		return ErrNotRecording
	}
	cb.state = CommandBufferExecutable
	log.D(ctx, "CommandBuffer %#x end", uint64(cb.handle))
	return nil
}

// Reset returns the buffer to the initial state.
func (cb *CommandBuffer) Reset(ctx context.Context) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
	log.D(ctx, "CommandBuffer %#x reset", uint64(cb.handle))
}

// State reports the buffer's lifecycle state at the instant of the call.
func (cb *CommandBuffer) State() CommandBufferState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CommandBuffer) reset() {
	cb.state = CommandBufferInitial
}
