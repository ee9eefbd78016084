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

// Package cli implements cakectl, the command-line companion of the caked
// service.
//
// # Commands
//
// render - project cakes from a fixture:
//
//	cakectl render --fixture cakes.yaml --view points --format table
//	cakectl render --view detail --id 4 --base-url https://cakes.example.com
//	cakectl render --fixture cm://bakery/cakes --output cm://bakery/rendered --kubeconfig ~/.kube/config
//
// Produces the same list, detail, or point projections the service returns,
// wrapped in a CakeRendering document. Without --fixture the built-in sample
// catalog is used. With --id (1 or more) a single cake is rendered, otherwise
// the whole catalog.
//
// label - resolve stored cake type codes:
//
//	cakectl label 1 4 99 NULL
//
// Prints one "code<TAB>label" line per argument. Undeclared and
// non-integer codes print Unknown.
//
// choices - list the declared cake types:
//
//	cakectl choices --format json
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// render and choices accept --format json|yaml|table (default yaml) and
// --output FILE or cm://namespace/name (default stdout).
//
// # Exit Status
//
// 2 for invalid input, 3 when a requested cake does not exist, 1 for any
// other failure.
package cli
