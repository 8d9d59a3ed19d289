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

package assert

import "reflect"

// OnSlice is the result of calling ThatSlice on an Assertion.
// It provides assertions on slice and array types.
type OnSlice struct {
	Assertion
	slice interface{}
}

// ThatSlice returns an OnSlice for slice based assertions.
func (a Assertion) ThatSlice(slice interface{}) OnSlice {
	return OnSlice{Assertion: a, slice: slice}
}

func (o OnSlice) length() int {
	return reflect.ValueOf(o.slice).Len()
}

// IsEmpty asserts that the slice has no values in it.
func (o OnSlice) IsEmpty() bool {
	return o.IsLength(0)
}

// IsNotEmpty asserts that the slice has at least one value in it.
func (o OnSlice) IsNotEmpty() bool {
	return o.Compare(o.slice, "length >", 0).Test(o.length() > 0)
}

// IsLength asserts that the slice has exactly the specified number of values.
func (o OnSlice) IsLength(length int) bool {
	return o.Compare(o.slice, "length ==", length).Test(o.length() == length)
}

// Equals asserts the array or slice matches expected.
func (o OnSlice) Equals(expected interface{}) bool {
	return o.TestDeepEqual(o.slice, expected)
}
