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

	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

// Queue is the execution queue associated with a LogicalDevice.
type Queue struct {
	refcount
	physicalDevice *PhysicalDevice
	flags          vulkan.DeviceQueueCreateFlags
	familyIndex    uint32
}

func queueList(r *registry) *[]*Queue { return &r.queues }

// newQueue builds and registers the queue for a logical device.
func newQueue(ctx context.Context, physicalDevice *PhysicalDevice, info vulkan.DeviceQueueCreateInfo) *Queue {
	log.I(ctx, "new Queue family %d", info.QueueFamilyIndex)
	q := &Queue{
		physicalDevice: physicalDevice,
		flags:          info.Flags,
		familyIndex:    info.QueueFamilyIndex,
	}
	q.pin()
	registerDispatchable(queueList, q)
	return q
}

// Handle encodes the queue as its dispatchable handle.
func (q *Queue) Handle() vulkan.Queue {
	return vulkan.Queue(handleOf(q))
}

// QueueFromHandle decodes handle and takes a reference on the queue.
// The caller must Release the returned queue.
func QueueFromHandle(handle vulkan.Queue) *Queue {
	if handle == vulkan.NullHandle {
		return nil
	}
	q := objectAt[Queue](uintptr(handle))
	q.pin()
	return q
}

// FamilyIndex returns the queue family the queue was created from.
func (q *Queue) FamilyIndex() uint32 { return q.familyIndex }

// destroy removes the queue from the registry. Queues are owned by their
// logical device and are destroyed with it, never by the caller directly.
func (q *Queue) destroy(ctx context.Context) {
	log.I(ctx, "destroy Queue family %d", q.familyIndex)
	unregisterDispatchable(queueList, q)
	q.assertLast("Queue")
	q.Release()
}
