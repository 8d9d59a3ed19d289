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

	"github.com/szx/vulkan-software-rasterizer/core/assert"
	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/driver"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

func newTestSurface(ctx context.Context, t *testing.T, i *driver.Instance) *driver.Surface {
	s, err := driver.CreateSurface(ctx, i, &vulkan.SurfaceCreateInfo{Connection: 1, Window: 2})
	assert.For(ctx, "CreateSurface").ThatError(err).Succeeded()
	if s == nil {
		t.Fatal("no surface")
	}
	return s
}

func TestSurfaceRequiresWindow(t *testing.T) {
	ctx := log.Testing(t)
	_, err := driver.CreateSurface(ctx, nil, &vulkan.SurfaceCreateInfo{})
	assert.For(ctx, "no window").ThatError(err).Equals(driver.ErrNoWindow)
}

func TestSwapchainOwnsItsImages(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)
	s := newTestSurface(ctx, t, nil)
	defer driver.DestroySurface(ctx, s.Handle())

	sc, err := driver.CreateSwapchain(ctx, d, &vulkan.SwapchainCreateInfo{
		Surface:       s.Handle(),
		MinImageCount: 3,
		ImageFormat:   vulkan.FormatR8G8B8A8Unorm,
		ImageExtent:   vulkan.Extent2D{Width: 640, Height: 480},
	})
	assert.For(ctx, "CreateSwapchain").ThatError(err).Succeeded()
	assert.For(ctx, "image count").ThatInteger(len(sc.Images())).Equals(3)

	handles := make([]vulkan.Image, len(sc.Images()))
	for i, img := range sc.Images() {
		handles[i] = img.Handle()
		_, ok := driver.ResolveImage(handles[i])
		assert.For(ctx, "image %d alive", i).ThatBoolean(ok).IsTrue()
	}

	driver.DestroySwapchain(ctx, sc.Handle())
	for i, h := range handles {
		_, ok := driver.ResolveImage(h)
		assert.For(ctx, "image %d destroyed", i).ThatBoolean(ok).IsFalse()
	}
}

func TestSwapchainRequiresLiveSurface(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	_, err := driver.CreateSwapchain(ctx, d, &vulkan.SwapchainCreateInfo{Surface: vulkan.NullHandle})
	assert.For(ctx, "dead surface").ThatError(err).Failed()
}

func TestAcquireRoundRobin(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)
	s := newTestSurface(ctx, t, nil)
	defer driver.DestroySurface(ctx, s.Handle())

	sc, err := driver.CreateSwapchain(ctx, d, &vulkan.SwapchainCreateInfo{
		Surface:       s.Handle(),
		MinImageCount: 2,
		ImageFormat:   vulkan.FormatR8G8B8A8Unorm,
		ImageExtent:   vulkan.Extent2D{Width: 64, Height: 64},
	})
	assert.For(ctx, "CreateSwapchain").ThatError(err).Succeeded()
	defer driver.DestroySwapchain(ctx, sc.Handle())

	fence := driver.CreateFence(ctx, d, nil)
	defer driver.DestroyFence(ctx, fence.Handle())

	for _, want := range []uint32{0, 1, 0, 1} {
		got, r := sc.AcquireNextImage(ctx, nil, nil)
		assert.For(ctx, "acquire result").That(r).Equals(vulkan.Success)
		assert.For(ctx, "acquired index").ThatInteger(int(got)).Equals(int(want))
	}

	_, r := sc.AcquireNextImage(ctx, nil, fence)
	assert.For(ctx, "acquire with fence").That(r).Equals(vulkan.Success)
	assert.For(ctx, "fence signaled by acquire").ThatBoolean(fence.Signaled()).IsTrue()
}

func TestImageViewTracksImage(t *testing.T) {
	ctx := log.Testing(t)
	d := newTestDevice(ctx, t)
	defer d.Destroy(ctx)

	img := driver.CreateImage(ctx, d, &vulkan.ImageCreateInfo{
		ImageType: vulkan.ImageType2D,
		Format:    vulkan.FormatR8G8B8A8Unorm,
		Extent:    vulkan.Extent3D{Width: 16, Height: 16, Depth: 1},
	})
	defer driver.DestroyImage(ctx, img.Handle())

	v, err := driver.CreateImageView(ctx, d, &vulkan.ImageViewCreateInfo{
		Image:  img.Handle(),
		Format: vulkan.FormatR8G8B8A8Unorm,
	})
	assert.For(ctx, "CreateImageView").ThatError(err).Succeeded()
	defer driver.DestroyImageView(ctx, v.Handle())
	assert.For(ctx, "view target").That(v.Image()).Equals(img)

	_, err = driver.CreateImageView(ctx, d, &vulkan.ImageViewCreateInfo{Image: vulkan.NullHandle})
	assert.For(ctx, "dead image").ThatError(err).Failed()
}
