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
	"math"
	"time"

	"github.com/szx/vulkan-software-rasterizer/core/event/task"
	"github.com/szx/vulkan-software-rasterizer/core/fault"
	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

const (
	// ErrNoAdapter is returned when device creation is given no adapter.
	ErrNoAdapter = fault.Const("device creation requires an adapter")
	// ErrNoQueueRequest is returned when device creation requests no queues.
	ErrNoQueueRequest = fault.Const("device creation requires at least one queue request")
)

// LogicalDevice associates driver functions with a PhysicalDevice.
// It owns its queue and is the scope for all non-dispatchable objects.
type LogicalDevice struct {
	refcount
	physicalDevice *PhysicalDevice
	queue          *Queue
}

func logicalDeviceList(r *registry) *[]*LogicalDevice { return &r.logicalDevices }

// NewLogicalDevice builds and registers a logical device on the given
// adapter, creating its queue from the first queue request.
// The returned device holds the creating caller's reference.
func NewLogicalDevice(ctx context.Context, physicalDevice *PhysicalDevice, info *vulkan.DeviceCreateInfo) (*LogicalDevice, error) {
	if physicalDevice == nil {
		return nil, ErrNoAdapter
	}
	if info == nil || len(info.QueueCreateInfos) == 0 {
		return nil, ErrNoQueueRequest
	}
	log.I(ctx, "new LogicalDevice")
	d := &LogicalDevice{
		physicalDevice: physicalDevice,
		queue:          newQueue(ctx, physicalDevice, info.QueueCreateInfos[0]),
	}
	d.pin()
	registerDispatchable(logicalDeviceList, d)
	return d, nil
}

// Handle encodes the device as its dispatchable handle.
func (d *LogicalDevice) Handle() vulkan.Device {
	return vulkan.Device(handleOf(d))
}

// DeviceFromHandle decodes handle and takes a reference on the device.
// The caller must Release (or Destroy) the returned device.
func DeviceFromHandle(handle vulkan.Device) *LogicalDevice {
	if handle == vulkan.NullHandle {
		return nil
	}
	d := objectAt[LogicalDevice](uintptr(handle))
	d.pin()
	return d
}

// PhysicalDevice returns the adapter the device was created on.
func (d *LogicalDevice) PhysicalDevice() *PhysicalDevice { return d.physicalDevice }

// Queue returns the device queue. The device has a single queue, so the
// family and queue indices select nothing yet; requesting the same indices
// twice returns the identical queue.
func (d *LogicalDevice) Queue(queueFamilyIndex, queueIndex uint32) *Queue {
	_ = queueFamilyIndex
	_ = queueIndex
	return d.queue
}

// WaitIdle blocks until the device has no work in flight. This core queues
// no asynchronous work, so it returns immediately.
func (d *LogicalDevice) WaitIdle(ctx context.Context) {
	log.D(ctx, "device wait idle")
}

// Destroy removes the device and its queue from the registry and consumes
// the caller's reference, which must be the last one outstanding.
func (d *LogicalDevice) Destroy(ctx context.Context) {
	log.I(ctx, "destroy LogicalDevice")
	d.queue.destroy(ctx)
	unregisterDispatchable(logicalDeviceList, d)
	d.assertLast("LogicalDevice")
	d.Release()
}

// ResetFences returns every fence in fences to the unsignaled state.
// Fences not owned by this device are silently skipped.
func (d *LogicalDevice) ResetFences(ctx context.Context, fences []*Fence) {
	for _, f := range fences {
		if f == nil || f.device != d {
			continue
		}
		f.Reset(ctx)
	}
}

// WaitForFences blocks until the fences are signaled or timeout nanoseconds
// elapse. If waitAll is set every fence must signal; otherwise one is
// enough. Fences not owned by this device are silently skipped. A timeout
// of zero polls without blocking. Expiry is reported as vulkan.Timeout and
// leaves every fence in its pre-call state.
//
// The registry lock is never held while waiting; each fence publishes its
// state through a channel owned by the fence's lock.
func (d *LogicalDevice) WaitForFences(ctx context.Context, fences []*Fence, waitAll bool, timeout uint64) vulkan.Result {
	owned := make([]*Fence, 0, len(fences))
	for _, f := range fences {
		if f == nil || f.device != d {
			continue
		}
		owned = append(owned, f)
	}
	if len(owned) == 0 {
		return vulkan.Success
	}

	if satisfied(owned, waitAll) {
		return vulkan.Success
	}
	if timeout == 0 {
		return vulkan.Timeout
	}

	budget := toDuration(timeout)
	if waitAll {
		start := time.Now()
		for _, f := range owned {
			remaining := budget - time.Since(start)
			if remaining <= 0 || !f.signal().TryWait(ctx, remaining) {
				return vulkan.Timeout
			}
		}
		return vulkan.Success
	}

	// Wait-any: aggregate the fence signals into one.
	any, fire := task.NewSignal()
	fire = task.Once(fire)
	stop := make(chan struct{})
	defer close(stop)
	for _, f := range owned {
		go func(s task.Signal) {
			select {
			case <-s:
				fire(ctx)
			case <-stop:
			}
		}(f.signal())
	}
	if any.TryWait(ctx, budget) {
		return vulkan.Success
	}
	return vulkan.Timeout
}

func satisfied(fences []*Fence, waitAll bool) bool {
	for _, f := range fences {
		if f.Signaled() {
			if !waitAll {
				return true
			}
		} else if waitAll {
			return false
		}
	}
	return waitAll
}

// toDuration converts a caller timeout in nanoseconds to a Duration,
// clamping vulkan.TimeoutInfinite and other out-of-range values.
func toDuration(timeout uint64) time.Duration {
	if timeout > math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(timeout)
}
