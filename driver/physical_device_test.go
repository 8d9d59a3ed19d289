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
	"context"
	"testing"
	"time"

	"github.com/szx/vulkan-software-rasterizer/core/assert"
	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/driver"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

// A log handler is caller code and may itself use the driver, so no driver
// operation may invoke it while a registry lock is held.
func TestLogHandlerMayUseRegistry(t *testing.T) {
	ctx := log.PutHandler(context.Background(), log.NewHandler(func(m *log.Message) {
		driver.ResolveFence(vulkan.Fence(0x1234))
	}, nil))

	done := make(chan struct{})
	go func() {
		defer close(done)
		driver.GetPhysicalDevice(ctx)

		d, err := driver.NewLogicalDevice(ctx, driver.GetPhysicalDevice(ctx), &vulkan.DeviceCreateInfo{
			QueueCreateInfos: []vulkan.DeviceQueueCreateInfo{{QueuePriorities: []float32{1.0}}},
		})
		if err != nil {
			t.Errorf("NewLogicalDevice: %v", err)
			return
		}
		f := driver.CreateFence(ctx, d, nil)
		f.Signal(ctx)
		driver.DestroyFence(ctx, f.Handle())
		d.Destroy(ctx)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("driver call blocked with a registry-using log handler installed")
	}

	tctx := log.Testing(t)
	assert.For(tctx, "adapter").That(driver.GetPhysicalDevice(tctx)).IsNotNil()
}
