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

// Package cake exposes cake records as read-only JSON projections.
//
// A stored Cake carries an integer category code. Projections never expose
// the code; they expose its label from the declared choices:
//
//	| code | label      |
//	|------|------------|
//	| 1    | Chocolate  |
//	| 2    | Vanilla    |
//	| 3    | Carrot     |
//	| 4    | Red Velvet |
//	| 5    | Cheesecake |
//
// Any other code, and a NULL code, is rendered as "Unknown".
//
// # Projections
//
// CakeListView is the summary view (resource_id, cake_type, resource_uri).
// CakeDetailView adds message and CakePointListView adds point and points.
// Both embed CakeListView by value, so their JSON carries every summary key.
// resource_uri is reversed from the "cake-detail" route; it is the only
// step of a projection that can fail.
//
// # Records
//
// Catalog is the read-only source of records. MemoryCatalog is built from a
// fixture document (kind CakeFixture) loaded from disk, an http(s) URL, a
// cm://namespace/name ConfigMap, or the sample embedded in the binary.
//
// Rendering wraps a batch of projections in a CakeRendering document whose
// header carries the render time, binary version and view.
//
// # HTTP
//
// Handler serves the projections:
//
//	GET /v1/cakes         -> []CakeListView
//	GET /v1/cakes/points  -> []CakePointListView
//	GET /v1/cakes/{id}    -> CakeDetailView
package cake
