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

package vulkan

// Result is the status code returned by every fallible entry point.
// Zero and positive values are success codes; negative values are errors.
// Timeout in particular is a success code, not an error.
type Result int32

const (
	Success    Result = 0
	NotReady   Result = 1
	Timeout    Result = 2
	EventSet   Result = 3
	EventReset Result = 4
	Incomplete Result = 5

	ErrOutOfHostMemory      Result = -1
	ErrOutOfDeviceMemory    Result = -2
	ErrInitializationFailed Result = -3
	ErrDeviceLost           Result = -4
	ErrMemoryMapFailed      Result = -5
	ErrLayerNotPresent      Result = -6
	ErrExtensionNotPresent  Result = -7
	ErrFeatureNotPresent    Result = -8
	ErrIncompatibleDriver   Result = -9
	ErrTooManyObjects       Result = -10
	ErrFormatNotSupported   Result = -11

	ErrSurfaceLost       Result = -1000000000
	ErrNativeWindowInUse Result = -1000000001
	Suboptimal           Result = 1000001003
	ErrOutOfDate         Result = -1000001004
)

// IsError returns true if the result is an error code.
func (r Result) IsError() bool { return r < 0 }

func (r Result) String() string {
	switch r {
	case Success:
		return "VK_SUCCESS"
	case NotReady:
		return "VK_NOT_READY"
	case Timeout:
		return "VK_TIMEOUT"
	case EventSet:
		return "VK_EVENT_SET"
	case EventReset:
		return "VK_EVENT_RESET"
	case Incomplete:
		return "VK_INCOMPLETE"
	case ErrOutOfHostMemory:
		return "VK_ERROR_OUT_OF_HOST_MEMORY"
	case ErrOutOfDeviceMemory:
		return "VK_ERROR_OUT_OF_DEVICE_MEMORY"
	case ErrInitializationFailed:
		return "VK_ERROR_INITIALIZATION_FAILED"
	case ErrDeviceLost:
		return "VK_ERROR_DEVICE_LOST"
	case ErrMemoryMapFailed:
		return "VK_ERROR_MEMORY_MAP_FAILED"
	case ErrLayerNotPresent:
		return "VK_ERROR_LAYER_NOT_PRESENT"
	case ErrExtensionNotPresent:
		return "VK_ERROR_EXTENSION_NOT_PRESENT"
	case ErrFeatureNotPresent:
		return "VK_ERROR_FEATURE_NOT_PRESENT"
	case ErrIncompatibleDriver:
		return "VK_ERROR_INCOMPATIBLE_DRIVER"
	case ErrTooManyObjects:
		return "VK_ERROR_TOO_MANY_OBJECTS"
	case ErrFormatNotSupported:
		return "VK_ERROR_FORMAT_NOT_SUPPORTED"
	case ErrSurfaceLost:
		return "VK_ERROR_SURFACE_LOST_KHR"
	case ErrNativeWindowInUse:
		return "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR"
	case Suboptimal:
		return "VK_SUBOPTIMAL_KHR"
	case ErrOutOfDate:
		return "VK_ERROR_OUT_OF_DATE_KHR"
	default:
		return "VK_UNKNOWN"
	}
}
