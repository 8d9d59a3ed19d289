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

const (
	// ErrNoSubpasses is returned when a render pass declares no subpasses.
	ErrNoSubpasses = fault.Const("render pass creation requires at least one subpass")
	// ErrNoShaderCode is returned when a shader module is given no code.
	ErrNoShaderCode = fault.Const("shader module creation requires code")
)

// PipelineLayout describes the resource interface of a pipeline.
type PipelineLayout struct {
	handle             vulkan.PipelineLayout
	device             *LogicalDevice
	pushConstantRanges []vulkan.PushConstantRange
}

func pipelineLayoutTable(r *registry) map[vulkan.PipelineLayout]*PipelineLayout {
	return r.pipelineLayouts
}

// CreatePipelineLayout builds and registers a pipeline layout.
func CreatePipelineLayout(ctx context.Context, device *LogicalDevice, info *vulkan.PipelineLayoutCreateInfo) *PipelineLayout {
	l := &PipelineLayout{device: device}
	if info != nil {
		l.pushConstantRanges = info.PushConstantRanges
	}
	register(pipelineLayoutTable, l, func(h vulkan.PipelineLayout) { l.handle = h })
	log.D(ctx, "new PipelineLayout %#x", uint64(l.handle))
	return l
}

// ResolvePipelineLayout returns the live layout registered under handle.
func ResolvePipelineLayout(handle vulkan.PipelineLayout) (*PipelineLayout, bool) {
	return resolve(pipelineLayoutTable, handle)
}

// DestroyPipelineLayout unregisters the layout named by handle.
func DestroyPipelineLayout(ctx context.Context, handle vulkan.PipelineLayout) bool {
	l, ok := unregister(pipelineLayoutTable, handle)
	if !ok {
		return false
	}
	log.D(ctx, "destroy PipelineLayout %#x", uint64(l.handle))
	return true
}

// Handle returns the layout's registry identity.
func (l *PipelineLayout) Handle() vulkan.PipelineLayout { return l.handle }

// Device returns the logical device the layout was created on.
func (l *PipelineLayout) Device() *LogicalDevice { return l.device }

// RenderPass describes the attachments and subpasses of a rendering job.
type RenderPass struct {
	handle      vulkan.RenderPass
	device      *LogicalDevice
	attachments []vulkan.AttachmentDescription
	subpasses   []vulkan.SubpassDescription
}

func renderPassTable(r *registry) map[vulkan.RenderPass]*RenderPass { return r.renderPasses }

// CreateRenderPass builds and registers a render pass.
func CreateRenderPass(ctx context.Context, device *LogicalDevice, info *vulkan.RenderPassCreateInfo) (*RenderPass, error) {
	if info == nil || len(info.Subpasses) == 0 {
		return nil, ErrNoSubpasses
	}
	for _, sp := range info.Subpasses {
		for _, a := range sp.ColorAttachments {
			if int(a) >= len(info.Attachments) {
				return nil, errors.Errorf("subpass references attachment %d of %d", a, len(info.Attachments))
			}
		}
	}
	rp := &RenderPass{
		device:      device,
		attachments: info.Attachments,
		subpasses:   info.Subpasses,
	}
	register(renderPassTable, rp, func(h vulkan.RenderPass) { rp.handle = h })
	log.D(ctx, "new RenderPass %#x", uint64(rp.handle))
	return rp, nil
}

// ResolveRenderPass returns the live render pass registered under handle.
func ResolveRenderPass(handle vulkan.RenderPass) (*RenderPass, bool) {
	return resolve(renderPassTable, handle)
}

// DestroyRenderPass unregisters the render pass named by handle.
func DestroyRenderPass(ctx context.Context, handle vulkan.RenderPass) bool {
	rp, ok := unregister(renderPassTable, handle)
	if !ok {
		return false
	}
	log.D(ctx, "destroy RenderPass %#x", uint64(rp.handle))
	return true
}

// Handle returns the render pass's registry identity.
func (rp *RenderPass) Handle() vulkan.RenderPass { return rp.handle }

// Device returns the logical device the render pass was created on.
func (rp *RenderPass) Device() *LogicalDevice { return rp.device }

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// ShaderModule holds a validated SPIR-V program.
type ShaderModule struct {
	handle vulkan.ShaderModule
	device *LogicalDevice
	code   []uint32
}

func shaderModuleTable(r *registry) map[vulkan.ShaderModule]*ShaderModule {
	return r.shaderModules
}

// CreateShaderModule validates the code words, then builds and registers a
// shader module holding its own copy of them.
func CreateShaderModule(ctx context.Context, device *LogicalDevice, info *vulkan.ShaderModuleCreateInfo) (*ShaderModule, error) {
	if info == nil || len(info.Code) == 0 {
		return nil, ErrNoShaderCode
	}
	if info.Code[0] != spirvMagic {
		return nil, errors.Errorf("shader code starts with %#08x, want %#08x", info.Code[0], uint32(spirvMagic))
	}
	m := &ShaderModule{
		device: device,
		code:   append([]uint32(nil), info.Code...),
	}
	register(shaderModuleTable, m, func(h vulkan.ShaderModule) { m.handle = h })
	log.D(ctx, "new ShaderModule %#x words=%d", uint64(m.handle), len(m.code))
	return m, nil
}

// ResolveShaderModule returns the live shader module registered under
// handle.
func ResolveShaderModule(handle vulkan.ShaderModule) (*ShaderModule, bool) {
	return resolve(shaderModuleTable, handle)
}

// DestroyShaderModule unregisters the shader module named by handle.
func DestroyShaderModule(ctx context.Context, handle vulkan.ShaderModule) bool {
	m, ok := unregister(shaderModuleTable, handle)
	if !ok {
		return false
	}
	log.D(ctx, "destroy ShaderModule %#x", uint64(m.handle))
	return true
}

// Handle returns the shader module's registry identity.
func (m *ShaderModule) Handle() vulkan.ShaderModule { return m.handle }

// Code returns the module's SPIR-V words.
func (m *ShaderModule) Code() []uint32 { return m.code }

// PipelineCache stores opaque pipeline build products.
type PipelineCache struct {
	handle vulkan.PipelineCache
	device *LogicalDevice
	data   []byte
}

func pipelineCacheTable(r *registry) map[vulkan.PipelineCache]*PipelineCache {
	return r.pipelineCaches
}

// CreatePipelineCache builds and registers a pipeline cache, seeded with
// the initial data if any was supplied.
func CreatePipelineCache(ctx context.Context, device *LogicalDevice, info *vulkan.PipelineCacheCreateInfo) *PipelineCache {
	c := &PipelineCache{device: device}
	if info != nil {
		c.data = append([]byte(nil), info.InitialData...)
	}
	register(pipelineCacheTable, c, func(h vulkan.PipelineCache) { c.handle = h })
	log.D(ctx, "new PipelineCache %#x", uint64(c.handle))
	return c
}

// ResolvePipelineCache returns the live pipeline cache registered under
// handle.
func ResolvePipelineCache(handle vulkan.PipelineCache) (*PipelineCache, bool) {
	return resolve(pipelineCacheTable, handle)
}

// DestroyPipelineCache unregisters the pipeline cache named by handle.
func DestroyPipelineCache(ctx context.Context, handle vulkan.PipelineCache) bool {
	c, ok := unregister(pipelineCacheTable, handle)
	if !ok {
		return false
	}
	log.D(ctx, "destroy PipelineCache %#x", uint64(c.handle))
	return true
}

// Handle returns the cache's registry identity.
func (c *PipelineCache) Handle() vulkan.PipelineCache { return c.handle }

// Data returns the cache's stored data.
func (c *PipelineCache) Data() []byte { return c.data }
