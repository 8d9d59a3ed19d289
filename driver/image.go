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

	"github.com/pkg/errors"

	"github.com/szx/vulkan-software-rasterizer/core/fault"
	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

// ErrNoImageViewInfo is returned when image view creation is given no
// create info.
const ErrNoImageViewInfo = fault.Const("image view creation requires create info")

// Image is a formatted block of texel storage.
type Image struct {
	handle vulkan.Image
	device *LogicalDevice
	format vulkan.Format
	extent vulkan.Extent3D
	usage  vulkan.ImageUsageFlags
}

func imageTable(r *registry) map[vulkan.Image]*Image { return r.images }

// CreateImage builds and registers an image owned by device.
func CreateImage(ctx context.Context, device *LogicalDevice, info *vulkan.ImageCreateInfo) *Image {
	img := &Image{device: device}
	if info != nil {
		img.format = info.Format
		img.extent = info.Extent
		img.usage = info.Usage
	}
	register(imageTable, img, func(h vulkan.Image) { img.handle = h })
	log.D(ctx, "new Image %#x %dx%d", uint64(img.handle), img.extent.Width, img.extent.Height)
	return img
}

// ResolveImage returns the live image registered under handle.
func ResolveImage(handle vulkan.Image) (*Image, bool) {
	return resolve(imageTable, handle)
}

// DestroyImage unregisters the image named by handle.
func DestroyImage(ctx context.Context, handle vulkan.Image) bool {
	img, ok := unregister(imageTable, handle)
	if !ok {
		return false
	}
	log.D(ctx, "destroy Image %#x", uint64(img.handle))
	return true
}

// Handle returns the image's registry identity.
func (img *Image) Handle() vulkan.Image { return img.handle }

// Device returns the logical device the image was created on.
func (img *Image) Device() *LogicalDevice { return img.device }

// Format returns the image's texel format.
func (img *Image) Format() vulkan.Format { return img.format }

// Extent returns the image's dimensions.
func (img *Image) Extent() vulkan.Extent3D { return img.extent }

// ImageView describes a way of reading an image.
type ImageView struct {
	handle vulkan.ImageView
	device *LogicalDevice
	image  *Image
	format vulkan.Format
}

func imageViewTable(r *registry) map[vulkan.ImageView]*ImageView { return r.imageViews }

// CreateImageView builds and registers a view of the image named in info.
func CreateImageView(ctx context.Context, device *LogicalDevice, info *vulkan.ImageViewCreateInfo) (*ImageView, error) {
	if info == nil {
		return nil, ErrNoImageViewInfo
	}
	img, ok := ResolveImage(info.Image)
	if !ok {
		return nil, errors.Errorf("image view target %#x is not alive", uint64(info.Image))
	}
	v := &ImageView{
		device: device,
		image:  img,
		format: info.Format,
	}
	register(imageViewTable, v, func(h vulkan.ImageView) { v.handle = h })
	log.D(ctx, "new ImageView %#x of Image %#x", uint64(v.handle), uint64(img.handle))
	return v, nil
}

// ResolveImageView returns the live image view registered under handle.
func ResolveImageView(handle vulkan.ImageView) (*ImageView, bool) {
	return resolve(imageViewTable, handle)
}

// DestroyImageView unregisters the image view named by handle.
func DestroyImageView(ctx context.Context, handle vulkan.ImageView) bool {
	v, ok := unregister(imageViewTable, handle)
	if !ok {
		return false
	}
	log.D(ctx, "destroy ImageView %#x", uint64(v.handle))
	return true
}

// Handle returns the image view's registry identity.
func (v *ImageView) Handle() vulkan.ImageView { return v.handle }

// Image returns the image the view reads.
func (v *ImageView) Image() *Image { return v.image }
