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
	"fmt"
	"io"
	"os"
	"sync"
)

// Handler is the interface implemented by types that consume log messages.
type Handler interface {
	Handle(*Message)
	Close()
}

type handler struct {
	handle func(*Message)
	close  func()
}

func (h handler) Handle(m *Message) { h.handle(m) }
func (h handler) Close() {
	if h.close != nil {
		h.close()
	}
}

// NewHandler returns a Handler that calls handle for each message and close
// when the handler is closed. close may be nil.
func NewHandler(handle func(m *Message), close func()) Handler {
	return handler{handle, close}
}

// Writer returns a Handler that writes each message to w, one per line.
// The returned handler is safe to use concurrently.
func Writer(w io.Writer) Handler {
	mu := sync.Mutex{}
	return handler{
		handle: func(m *Message) {
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintln(w, m.String())
		},
	}
}

// Stdout returns a Handler that writes to os.Stdout.
func Stdout() Handler { return Writer(os.Stdout) }

// Stderr returns a Handler that writes to os.Stderr.
func Stderr() Handler { return Writer(os.Stderr) }
