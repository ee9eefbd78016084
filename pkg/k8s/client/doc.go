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

// Package client builds the Kubernetes client used for ConfigMap-backed cake
// fixtures and rendered outputs (cm://namespace/name URIs).
//
// GetKubeClient is initialized once and shared; BuildKubeClient creates a new
// client for an explicit kubeconfig, bypassing the cache:
//
//	k, err := client.GetKubeClient()
//	k, _, err := client.BuildKubeClient("/path/to/kubeconfig")
//
// Kubeconfig discovery order when no path is given:
//  1. KUBECONFIG environment variable
//  2. ~/.kube/config, if it exists
//  3. In-cluster service account
//
// Only cm:// paths reach this package. File and http(s) fixtures never need
// cluster access.
package client
