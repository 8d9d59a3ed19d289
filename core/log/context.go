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

package log

import (
	"context"
	"time"
)

type handlerKeyTy string
type filterKeyTy string
type tagKeyTy string
type processKeyTy string
type clockKeyTy string

const (
	handlerKey = handlerKeyTy("log.handler")
	filterKey  = filterKeyTy("log.filter")
	tagKey     = tagKeyTy("log.tag")
	processKey = processKeyTy("log.process")
	clockKey   = clockKeyTy("log.clock")
)

// PutHandler returns a new context with the Handler assigned to w.
func PutHandler(ctx context.Context, w Handler) context.Context {
	return context.WithValue(ctx, handlerKey, w)
}

// GetHandler returns the Handler assigned to ctx, or nil.
func GetHandler(ctx context.Context) Handler {
	out, _ := ctx.Value(handlerKey).(Handler)
	return out
}

// Filter is the interface implemented by types that filter log messages by
// severity.
type Filter interface {
	ShowSeverity(s Severity) bool
}

// SeverityFilter implements Filter that only shows messages at or above the
// filter's severity.
type SeverityFilter Severity

// ShowSeverity returns true if s is at or above the filter's severity.
func (f SeverityFilter) ShowSeverity(s Severity) bool { return s >= Severity(f) }

// PutFilter returns a new context with the Filter assigned to f.
func PutFilter(ctx context.Context, f Filter) context.Context {
	return context.WithValue(ctx, filterKey, f)
}

// GetFilter returns the Filter assigned to ctx, or nil.
func GetFilter(ctx context.Context) Filter {
	out, _ := ctx.Value(filterKey).(Filter)
	return out
}

// PutTag returns a new context with the tag assigned to t.
func PutTag(ctx context.Context, t string) context.Context {
	return context.WithValue(ctx, tagKey, t)
}

// GetTag returns the tag assigned to ctx, or an empty string.
func GetTag(ctx context.Context) string {
	out, _ := ctx.Value(tagKey).(string)
	return out
}

// PutProcess returns a new context with the process name assigned to p.
func PutProcess(ctx context.Context, p string) context.Context {
	return context.WithValue(ctx, processKey, p)
}

// GetProcess returns the process name assigned to ctx, or an empty string.
func GetProcess(ctx context.Context) string {
	out, _ := ctx.Value(processKey).(string)
	return out
}

// Clock is the interface for types that provide the time for log messages.
type Clock func() time.Time

// PutClock returns a new context with the Clock assigned to c.
func PutClock(ctx context.Context, c Clock) context.Context {
	return context.WithValue(ctx, clockKey, c)
}

// GetClock returns the Clock assigned to ctx, or time.Now.
func GetClock(ctx context.Context) Clock {
	if out, ok := ctx.Value(clockKey).(Clock); ok {
		return out
	}
	return time.Now
}
