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

package driver_test

import (
	"testing"

	"github.com/szx/vulkan-software-rasterizer/core/assert"
	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/driver"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

func TestPhysicalDeviceIsCached(t *testing.T) {
	ctx := log.Testing(t)
	first := driver.GetPhysicalDevice(ctx)
	second := driver.GetPhysicalDevice(ctx)
	assert.For(ctx, "same adapter").That(second).Equals(first)
}

func TestDeviceRequiresQueue(t *testing.T) {
	ctx := log.Testing(t)
	_, err := driver.NewLogicalDevice(ctx, driver.GetPhysicalDevice(ctx), &vulkan.DeviceCreateInfo{})
	assert.For(ctx, "no queue infos").ThatError(err).Equals(driver.ErrNoQueueRequest)

	_, err = driver.NewLogicalDevice(ctx, nil, nil)
	assert.For(ctx, "no adapter").ThatError(err).Equals(driver.ErrNoAdapter)
}

func TestQueueIdentity(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	first := d.Queue(0, 0)
	second := d.Queue(0, 0)
	assert.For(ctx, "same queue").That(second).Equals(first)
}

func TestDispatchableRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	got := driver.DeviceFromHandle(d.Handle())
	assert.For(ctx, "device round trip").That(got).Equals(d)
	got.Release()

	q := d.Queue(0, 0)
	gotQ := driver.QueueFromHandle(q.Handle())
	assert.For(ctx, "queue round trip").That(gotQ).Equals(q)
	gotQ.Release()
}

func TestDeviceFromNullHandle(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "null decode").ThatBoolean(driver.DeviceFromHandle(vulkan.NullHandle) == nil).IsTrue()
}

func TestDeviceOwnsItsPhysicalDevice(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)
	assert.For(ctx, "adapter backref").That(d.PhysicalDevice()).Equals(driver.GetPhysicalDevice(ctx))
}
