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

package modal

import (
	"context"
	"sync"
)

type Autocomplete struct {
	Selector    string
	Placeholder string
}

// DeferredAutocompleter 服务端没有 DOM，只记录下来交给前端执行
type DeferredAutocompleter struct {
	mu    sync.Mutex
	items []Autocomplete
}

func NewDeferredAutocompleter() *DeferredAutocompleter {
	return &DeferredAutocompleter{}
}

func (d *DeferredAutocompleter) Enhance(ctx context.Context, selector, placeholder string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, item := range d.items {
		if item.Selector == selector {
			d.items[i].Placeholder = placeholder
			return nil
		}
	}
	d.items = append(d.items, Autocomplete{Selector: selector, Placeholder: placeholder})
	return nil
}

func (d *DeferredAutocompleter) Items() []Autocomplete {
	d.mu.Lock()
	defer d.mu.Unlock()
	res := make([]Autocomplete, len(d.items))
	copy(res, d.items)
	return res
}
