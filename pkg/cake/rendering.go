// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cake

import (
	"github.com/jonboulle/clockwork"

	"github.com/abhi-shete/delicious-cake/pkg/header"
)

// Rendering is a CakeRendering document wrapping one projection of a set
// of cakes. V is CakeListView, CakeDetailView or CakePointListView.
type Rendering[V any] struct {
	header.Header `json:",inline" yaml:",inline"`

	Spec RenderingSpec[V] `json:"spec" yaml:"spec"`
}

// RenderingSpec holds the rendered projections.
type RenderingSpec[V any] struct {
	View  string `json:"view" yaml:"view"`
	Cakes []V    `json:"cakes" yaml:"cakes"`
}

// NewRendering wraps views in a CakeRendering document stamped with the
// clock's time and the producing binary's version.
func NewRendering[V any](clock clockwork.Clock, version, view string, views []V) *Rendering[V] {
	if views == nil {
		views = []V{}
	}

	r := &Rendering[V]{
		Header: *header.New(header.WithMetadata("view", view)),
		Spec: RenderingSpec[V]{
			View:  view,
			Cakes: views,
		},
	}
	r.InitWithClock(clock, header.KindCakeRendering, header.APIVersionV1, version)
	return r
}
