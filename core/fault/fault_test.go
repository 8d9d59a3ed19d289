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

package fault_test

import (
	"testing"

	"github.com/szx/vulkan-software-rasterizer/core/assert"
	"github.com/szx/vulkan-software-rasterizer/core/fault"
	"github.com/szx/vulkan-software-rasterizer/core/log"
)

const testError = fault.Const("test error")

func TestConst(t *testing.T) {
	ctx := log.Testing(t)
	var err error = testError
	assert.For(ctx, "err").ThatError(err).HasMessage("test error")
}

func TestFrom(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "nil").ThatError(fault.From(nil)).Succeeded()
	assert.For(ctx, "error").ThatError(fault.From(testError)).Equals(testError)
	assert.For(ctx, "non error").ThatError(fault.From(10)).Equals(fault.InvalidErrorType)
}
