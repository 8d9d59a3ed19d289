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

package icd

import (
	"context"

	"github.com/szx/vulkan-software-rasterizer/driver"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

// CreatePipelineLayout creates a pipeline layout on the device.
func CreatePipelineLayout(ctx context.Context, device vulkan.Device, info *vulkan.PipelineLayoutCreateInfo) (vulkan.PipelineLayout, vulkan.Result) {
	d := driver.DeviceFromHandle(device)
	if d == nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	defer d.Release()
	return driver.CreatePipelineLayout(ctx, d, info).Handle(), vulkan.Success
}

// DestroyPipelineLayout destroys the layout. Null is a no-op.
func DestroyPipelineLayout(ctx context.Context, device vulkan.Device, layout vulkan.PipelineLayout) {
	if layout == vulkan.NullHandle {
		return
	}
	driver.DestroyPipelineLayout(ctx, layout)
}

// CreateRenderPass creates a render pass on the device.
func CreateRenderPass(ctx context.Context, device vulkan.Device, info *vulkan.RenderPassCreateInfo) (vulkan.RenderPass, vulkan.Result) {
	d := driver.DeviceFromHandle(device)
	if d == nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	defer d.Release()
	rp, err := driver.CreateRenderPass(ctx, d, info)
	if err != nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	return rp.Handle(), vulkan.Success
}

// DestroyRenderPass destroys the render pass. Null is a no-op.
func DestroyRenderPass(ctx context.Context, device vulkan.Device, renderPass vulkan.RenderPass) {
	if renderPass == vulkan.NullHandle {
		return
	}
	driver.DestroyRenderPass(ctx, renderPass)
}

// CreateShaderModule validates and stores a SPIR-V module on the device.
func CreateShaderModule(ctx context.Context, device vulkan.Device, info *vulkan.ShaderModuleCreateInfo) (vulkan.ShaderModule, vulkan.Result) {
	d := driver.DeviceFromHandle(device)
	if d == nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	defer d.Release()
	m, err := driver.CreateShaderModule(ctx, d, info)
	if err != nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	return m.Handle(), vulkan.Success
}

// DestroyShaderModule destroys the shader module. Null is a no-op.
func DestroyShaderModule(ctx context.Context, device vulkan.Device, module vulkan.ShaderModule) {
	if module == vulkan.NullHandle {
		return
	}
	driver.DestroyShaderModule(ctx, module)
}

// CreatePipelineCache creates a pipeline cache on the device.
func CreatePipelineCache(ctx context.Context, device vulkan.Device, info *vulkan.PipelineCacheCreateInfo) (vulkan.PipelineCache, vulkan.Result) {
	d := driver.DeviceFromHandle(device)
	if d == nil {
		return vulkan.NullHandle, vulkan.ErrInitializationFailed
	}
	defer d.Release()
	return driver.CreatePipelineCache(ctx, d, info).Handle(), vulkan.Success
}

// DestroyPipelineCache destroys the pipeline cache. Null is a no-op.
func DestroyPipelineCache(ctx context.Context, device vulkan.Device, cache vulkan.PipelineCache) {
	if cache == vulkan.NullHandle {
		return
	}
	driver.DestroyPipelineCache(ctx, cache)
}
