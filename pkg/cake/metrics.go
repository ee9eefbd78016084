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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/abhi-shete/delicious-cake/pkg/entity"
)

var (
	projectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cake_projections_total",
			Help: "Total number of cake records projected, by view",
		},
		[]string{"view"},
	)

	unknownCakeTypesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cake_unknown_type_total",
			Help: "Total number of projected cakes whose category code resolved to Unknown",
		},
	)
)

const (
	viewList   = "list"
	viewDetail = "detail"
	viewPoints = "points"
)

func observeProjections(view string, bases ...CakeListView) {
	projectionsTotal.WithLabelValues(view).Add(float64(len(bases)))
	for _, b := range bases {
		if b.CakeType == entity.UnknownLabel {
			unknownCakeTypesTotal.Inc()
		}
	}
}
