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
	"net/http"

	"github.com/abhi-shete/delicious-cake/pkg/routes"
)

// Route names. Resource URIs are reversed from RouteCakeDetail.
const (
	RouteCakeList   = "cake-list"
	RouteCakePoints = "cake-points"
	RouteCakeDetail = "cake-detail"
)

// Routes returns the cake routes in registration order.
func Routes() []routes.Route {
	return []routes.Route{
		{Name: RouteCakeList, Method: http.MethodGet, Pattern: "/v1/cakes"},
		{Name: RouteCakePoints, Method: http.MethodGet, Pattern: "/v1/cakes/points"},
		{Name: RouteCakeDetail, Method: http.MethodGet, Pattern: "/v1/cakes/{id}"},
	}
}

// NewRegistry returns a registry holding Routes. A non-empty baseURL makes
// reversed URIs absolute.
func NewRegistry(baseURL string) *routes.Registry {
	return routes.NewRegistry(routes.WithBaseURL(baseURL)).MustRegister(Routes()...)
}
