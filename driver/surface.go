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

	"github.com/szx/vulkan-software-rasterizer/core/fault"
	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

// ErrNoWindow is returned when surface creation names no native window.
const ErrNoWindow = fault.Const("surface creation requires a native window")

// Surface wraps a native window system target for presentation. The window
// system connection and window are opaque to the driver.
type Surface struct {
	handle     vulkan.SurfaceKHR
	instance   *Instance
	connection uintptr
	window     uintptr
}

func surfaceTable(r *registry) map[vulkan.SurfaceKHR]*Surface { return r.surfaces }

// CreateSurface builds and registers a surface for the given native window.
func CreateSurface(ctx context.Context, instance *Instance, info *vulkan.SurfaceCreateInfo) (*Surface, error) {
	if info == nil || info.Window == 0 {
		return nil, ErrNoWindow
	}
	s := &Surface{
		instance:   instance,
		connection: info.Connection,
		window:     info.Window,
	}
	register(surfaceTable, s, func(h vulkan.SurfaceKHR) { s.handle = h })
	log.D(ctx, "new Surface %#x window=%#x", uint64(s.handle), uint64(s.window))
	return s, nil
}

// ResolveSurface returns the live surface registered under handle.
func ResolveSurface(handle vulkan.SurfaceKHR) (*Surface, bool) {
	return resolve(surfaceTable, handle)
}

// DestroySurface unregisters the surface named by handle.
func DestroySurface(ctx context.Context, handle vulkan.SurfaceKHR) bool {
	s, ok := unregister(surfaceTable, handle)
	if !ok {
		return false
	}
	log.D(ctx, "destroy Surface %#x", uint64(s.handle))
	return true
}

// Handle returns the surface's registry identity.
func (s *Surface) Handle() vulkan.SurfaceKHR { return s.handle }

// Instance returns the instance the surface was created on.
func (s *Surface) Instance() *Instance { return s.instance }

// Window returns the opaque native window identifier.
func (s *Surface) Window() uintptr { return s.window }
