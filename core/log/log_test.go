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

package log_test

import (
	"context"
	"testing"

	"github.com/szx/vulkan-software-rasterizer/core/log"
)

func capture(into *[]*log.Message) log.Handler {
	return log.NewHandler(func(m *log.Message) { *into = append(*into, m) }, nil)
}

func TestLogLevels(t *testing.T) {
	got := []*log.Message{}
	ctx := log.PutHandler(context.Background(), capture(&got))
	log.D(ctx, "debug %d", 1)
	log.I(ctx, "info")
	log.W(ctx, "warning")
	log.E(ctx, "error")
	if len(got) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(got))
	}
	for i, expect := range []log.Severity{log.Debug, log.Info, log.Warning, log.Error} {
		if got[i].Severity != expect {
			t.Errorf("message %d severity: expected %v, got %v", i, expect, got[i].Severity)
		}
	}
	if got[0].Text != "debug 1" {
		t.Errorf("unexpected message text %q", got[0].Text)
	}
}

func TestLogFilter(t *testing.T) {
	got := []*log.Message{}
	ctx := log.PutHandler(context.Background(), capture(&got))
	ctx = log.PutFilter(ctx, log.SeverityFilter(log.Warning))
	log.D(ctx, "hidden")
	log.I(ctx, "hidden")
	log.W(ctx, "shown")
	if len(got) != 1 || got[0].Text != "shown" {
		t.Fatalf("filter passed unexpected messages: %v", got)
	}
}

func TestLogTagProcess(t *testing.T) {
	got := []*log.Message{}
	ctx := log.PutHandler(context.Background(), capture(&got))
	ctx = log.PutProcess(ctx, "test")
	ctx = log.PutTag(ctx, "tag")
	log.I(ctx, "hello")
	if len(got) != 1 {
		t.Fatalf("expected 1 message, got %d", len(got))
	}
	if s := got[0].String(); s != "I <test> [tag]: hello" {
		t.Errorf("unexpected formatted message %q", s)
	}
}

func TestNoHandlerIsSilent(t *testing.T) {
	// Must not panic.
	log.I(context.Background(), "dropped")
}

func TestErrf(t *testing.T) {
	ctx := context.Background()
	cause := log.Err(ctx, nil, "inner")
	err := log.Errf(ctx, cause, "outer %d", 4)
	if err.Error() != "outer 4\n   Cause: inner" {
		t.Errorf("unexpected error text %q", err.Error())
	}
}
