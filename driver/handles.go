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
	"fmt"
	"sync/atomic"
	"unsafe"
)

// This file is the entire unsafe boundary between dispatchable handle
// scalars and driver objects. A dispatchable handle is the address of the
// object, reinterpreted. Encoding does not pin the object: the registry's
// own entry is what keeps it alive, and the handle is a borrowed view.
// Decoding is sound only for a handle produced by encoding whose object has
// not yet been destroyed; anything else is undefined caller behaviour under
// the ABI contract and is not checkable here.

// handleOf encodes the address of obj as a handle scalar.
func handleOf[T any](obj *T) uintptr {
	return uintptr(unsafe.Pointer(obj))
}

// objectAt decodes a handle scalar back into an object pointer.
// h must come from handleOf and the object must still be registered.
func objectAt[T any](h uintptr) *T {
	return (*T)(unsafe.Pointer(h))
}

// refcount tracks external borrows of a dispatchable object: the creating
// caller's initial reference, plus every handle decode not yet released.
// The registry's own reference is never counted.
type refcount struct {
	n atomic.Int32
}

func (r *refcount) pin() {
	r.n.Add(1)
}

// Release drops a reference previously taken by a constructor or a
// FromHandle call.
func (r *refcount) Release() {
	if r.n.Add(-1) < 0 {
		panic("driver: release of a reference that was never taken")
	}
}

// assertLast faults unless exactly one borrow (the destroying caller's own)
// remains. It is called after unregistration, immediately before the object
// is abandoned to the collector, and is the guarantee that no call is
// concurrently decoding the handle being destroyed.
func (r *refcount) assertLast(what string) {
	if n := r.n.Load(); n != 1 {
		panic(fmt.Sprintf("driver: %s destroyed with %d outstanding references", what, n))
	}
}
