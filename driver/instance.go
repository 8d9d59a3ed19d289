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

// DriverName identifies this implementation in instance and adapter queries.
const DriverName = "vulkan_software_rasterizer"

// Instance holds system-level information and functionality.
// It is the root object of the driver connection.
type Instance struct {
	refcount
	applicationName string
}

func instanceList(r *registry) *[]*Instance { return &r.instances }

// NewInstance builds and registers a new Instance.
// The returned instance holds the creating caller's reference.
func NewInstance(ctx context.Context, info *vulkan.InstanceCreateInfo) *Instance {
	i := &Instance{}
	if info != nil && info.ApplicationInfo != nil {
		i.applicationName = info.ApplicationInfo.ApplicationName
	}
	i.pin()
	registerDispatchable(instanceList, i)
	log.I(ctx, "new Instance for %q", i.applicationName)
	return i
}

// Handle encodes the instance as its dispatchable handle.
func (i *Instance) Handle() vulkan.Instance {
	return vulkan.Instance(handleOf(i))
}

// InstanceFromHandle decodes handle and takes a reference on the instance.
// The caller must Release (or Destroy) the returned instance.
// handle must have been produced by Handle on a live instance; the null
// handle returns nil.
func InstanceFromHandle(handle vulkan.Instance) *Instance {
	if handle == vulkan.NullHandle {
		return nil
	}
	i := objectAt[Instance](uintptr(handle))
	i.pin()
	return i
}

// Destroy removes the instance from the registry and consumes the caller's
// reference, which must be the last one outstanding.
func (i *Instance) Destroy(ctx context.Context) {
	log.I(ctx, "destroy Instance")
	unregisterDispatchable(instanceList, i)
	i.assertLast("Instance")
	i.Release()
}

// InstanceExtensionProperties reports the instance-level extensions this
// driver implements.
func InstanceExtensionProperties() []vulkan.ExtensionProperties {
	return []vulkan.ExtensionProperties{
		{ExtensionName: "VK_KHR_surface", SpecVersion: 25},
		{ExtensionName: "VK_KHR_xcb_surface", SpecVersion: 6},
	}
}
