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

// The vkinfo command brings the driver up and prints the adapter's
// capabilities.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/pkg/errors"

	"github.com/szx/vulkan-software-rasterizer/core/log"
	"github.com/szx/vulkan-software-rasterizer/icd"
	"github.com/szx/vulkan-software-rasterizer/vulkan"
)

var verbose = flag.Bool("verbose", false, "include debug output")

func main() {
	flag.Parse()
	ctx := context.Background()
	ctx = log.PutHandler(ctx, log.Stdout())
	ctx = log.PutProcess(ctx, "vkinfo")
	if !*verbose {
		ctx = log.PutFilter(ctx, log.SeverityFilter(log.Info))
	}
	if err := run(ctx); err != nil {
		log.E(ctx, "%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	instance, result := icd.CreateInstance(ctx, &vulkan.InstanceCreateInfo{
		ApplicationInfo: &vulkan.ApplicationInfo{ApplicationName: "vkinfo"},
	})
	if result.IsError() {
		return errors.Errorf("create instance: %v", result)
	}
	defer icd.DestroyInstance(ctx, instance)

	extensions, _ := icd.EnumerateInstanceExtensionProperties()
	for _, e := range extensions {
		log.I(ctx, "instance extension %s rev %d", e.ExtensionName, e.SpecVersion)
	}

	adapters, result := icd.EnumeratePhysicalDevices(ctx, instance)
	if result.IsError() {
		return errors.Errorf("enumerate adapters: %v", result)
	}
	for _, adapter := range adapters {
		props := icd.GetPhysicalDeviceProperties(adapter)
		log.I(ctx, "adapter %q type=%v api=%#x", props.DeviceName, props.DeviceType, props.APIVersion)
		log.I(ctx, "  max image dimension 2D: %d", props.Limits.MaxImageDimension2D)

		mem := icd.GetPhysicalDeviceMemoryProperties(adapter)
		for i, heap := range mem.MemoryHeaps {
			log.I(ctx, "  heap %d: %d bytes", i, heap.Size)
		}
		for i, family := range icd.GetPhysicalDeviceQueueFamilyProperties(adapter) {
			log.I(ctx, "  queue family %d: flags=%#x count=%d", i, family.QueueFlags, family.QueueCount)
		}
		if ext, result := icd.EnumerateDeviceExtensionProperties(adapter); !result.IsError() {
			for _, e := range ext {
				log.I(ctx, "  device extension %s rev %d", e.ExtensionName, e.SpecVersion)
			}
		}
	}
	return nil
}
