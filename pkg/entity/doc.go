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

// Package entity provides building blocks shared by the output projections
// of the service.
//
// # Label Resolution
//
// Stored records frequently carry enumerated codes (a category, a status)
// that are exposed to clients as human-readable labels. LabelResolver turns
// a fixed, declared set of choices into a lookup that is built once and is
// read-only afterwards:
//
//	types := entity.NewLabelResolver(
//	    entity.Choice[int]{Code: 1, Label: "Chocolate"},
//	    entity.Choice[int]{Code: 2, Label: "Vanilla"},
//	)
//
//	types.Label(1)  // "Chocolate"
//	types.Label(99) // "Unknown"
//
// Label is a total function. Codes that were never declared resolve to
// UnknownLabel instead of returning an error, so a stale or corrupted value
// in storage never fails a response.
//
// A LabelResolver is safe for concurrent use.
package entity
