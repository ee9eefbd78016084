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

// Package routes keeps a registry of named HTTP routes and reverses route
// names back into URLs.
//
// Handlers are mounted by pattern, while response bodies refer to other
// resources by name. Keeping both in one registry means a resource URI can
// never drift from the route that serves it:
//
//	reg := routes.NewRegistry(routes.WithBaseURL("https://cakes.example.com"))
//	_ = reg.Register(routes.Route{Name: "cake-detail", Method: http.MethodGet, Pattern: "/v1/cakes/{id}"})
//
//	uri, err := reg.Reverse("cake-detail", 42)
//	// uri == "https://cakes.example.com/v1/cakes/42"
//
// Patterns use chi-style placeholders. Reverse substitutes positional
// arguments in the order the placeholders appear; a regular expression
// suffix such as {id:[0-9]+} is accepted and checked against the argument.
package routes
