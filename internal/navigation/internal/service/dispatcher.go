// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"sync"

	"github.com/ecodeclub/lms/internal/navigation/internal/domain"
)

type Callback func(ctx context.Context, hook *domain.BeforeNavbarPrepareNodes) error

// Dispatcher 按注册顺序调用回调，任何一个回调出错就中断
type Dispatcher struct {
	mu        sync.RWMutex
	names     []string
	callbacks []Callback
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register 同名的回调只保留一个，重复注册会原地替换
func (d *Dispatcher) Register(name string, cb Callback) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, n := range d.names {
		if n == name {
			d.callbacks[i] = cb
			return
		}
	}
	d.names = append(d.names, name)
	d.callbacks = append(d.callbacks, cb)
}

func (d *Dispatcher) Dispatch(ctx context.Context, hook *domain.BeforeNavbarPrepareNodes) error {
	d.mu.RLock()
	callbacks := d.callbacks
	d.mu.RUnlock()
	for _, cb := range callbacks {
		if err := cb(ctx, hook); err != nil {
			return err
		}
	}
	return nil
}
