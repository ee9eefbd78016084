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

// Package header provides the common document header for cake fixtures and
// rendered projection documents.
//
// Documents read or written by the CLI follow Kubernetes-style resource
// conventions:
//
//	kind: CakeFixture
//	apiVersion: cake.delicious.dev/v1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//
// # Usage
//
//	h := header.New(header.WithMetadata("view", "list"))
//	h.InitWithClock(clockwork.NewRealClock(), header.KindCakeRendering, header.APIVersionV1, version)
//
// Tests pass a fake clock for deterministic timestamps.
//
// # Validation
//
// Readers should check the header before trusting the payload:
//
//	if err := h.Validate(header.KindCakeFixture); err != nil {
//	    return err
//	}
package header
