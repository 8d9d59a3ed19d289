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

	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

// Semaphore is a binary queue synchronization primitive. Unlike a fence it
// is signaled and waited by queue operations, never directly by the host,
// and carries no device affinity.
type Semaphore struct {
	handle vulkan.Semaphore
	flags  vulkan.SemaphoreCreateFlags

	mu       sync.Mutex
	signaled bool
}

func semaphoreTable(r *registry) map[vulkan.Semaphore]*Semaphore { return r.semaphores }

// CreateSemaphore builds and registers a semaphore.
// Semaphores always start unsignaled.
func CreateSemaphore(ctx context.Context, info *vulkan.SemaphoreCreateInfo) *Semaphore {
	s := &Semaphore{}
	if info != nil {
		s.flags = info.Flags
	}
	register(semaphoreTable, s, func(h vulkan.Semaphore) { s.handle = h })
	log.D(ctx, "new Semaphore %#x", uint64(s.handle))
	return s
}

// ResolveSemaphore returns the live semaphore registered under handle.
func ResolveSemaphore(handle vulkan.Semaphore) (*Semaphore, bool) {
	return resolve(semaphoreTable, handle)
}

// DestroySemaphore unregisters the semaphore named by handle. Destroying an
// already destroyed or never created semaphore reports false.
func DestroySemaphore(ctx context.Context, handle vulkan.Semaphore) bool {
	s, ok := unregister(semaphoreTable, handle)
	if !ok {
		return false
	}
	log.D(ctx, "destroy Semaphore %#x", uint64(s.handle))
	return true
}

// Handle returns the semaphore's registry identity.
func (s *Semaphore) Handle() vulkan.Semaphore { return s.handle }

// Flags returns the semaphore's creation flags.
func (s *Semaphore) Flags() vulkan.SemaphoreCreateFlags { return s.flags }

// Signaled reports the semaphore state at the instant of the call.
func (s *Semaphore) Signaled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signaled
}

// Signal marks the semaphore signaled on behalf of a queue operation.
func (s *Semaphore) Signal(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signaled = true
	log.D(ctx, "Semaphore %#x signaled", uint64(s.handle))
}

// Unsignal consumes the semaphore's signal on behalf of a queue wait.
func (s *Semaphore) Unsignal(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signaled = false
	log.D(ctx, "Semaphore %#x unsignaled", uint64(s.handle))
}
