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

// Package serializer encodes and decodes cake data in JSON, YAML and a
// flattened table form.
//
// Writers render projections for the CLI:
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	defer w.Close()
//	if err := w.Serialize(ctx, views); err != nil {
//		return err
//	}
//
// NewOutputWriter picks the destination from a path: stdout when empty, a
// ConfigMap for cm://namespace/name, a file otherwise. A file that cannot be
// created is an error.
//
// Readers load fixture documents from a local path, an http(s) URL, or a
// ConfigMap. File formats are derived from the extension; ConfigMaps record
// theirs under the "format" key next to the cakes.<ext> payload:
//
//	fx, err := serializer.FromFileWithContext[cake.Fixture](ctx, "cakes.yaml")
//	fx, err = serializer.FromFileWithContext[cake.Fixture](ctx, "cm://bakery/cakes",
//		serializer.WithKubeconfig(path))
//
// Without WithKubeClient or WithKubeconfig the shared client from
// pkg/k8s/client is used.
//
// HTTP handlers use RespondJSON, which encodes the body before writing the
// status line so an encoding failure never produces a partial response.
//
// Table output flattens nested values into dotted keys named after the
// field's json tag. Embedded structs contribute their fields at the parent
// level, mirroring how encoding/json lays them out. Rows follow field
// declaration order and slice index order; only map keys are sorted.
package serializer
