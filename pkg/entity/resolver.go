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

package entity

// UnknownLabel is returned for any code that is not part of the declared choices.
const UnknownLabel = "Unknown"

// Choice pairs a stored code with its display label.
type Choice[K comparable] struct {
	Code  K      `json:"code" yaml:"code"`
	Label string `json:"label" yaml:"label"`
}

// LabelResolver maps stored codes to display labels.
// The lookup is built once by NewLabelResolver and never modified.
type LabelResolver[K comparable] struct {
	choices []Choice[K]
	lookup  map[K]string
}

// NewLabelResolver builds a resolver from the declared choices.
// When a code is declared more than once the first declaration wins.
func NewLabelResolver[K comparable](choices ...Choice[K]) *LabelResolver[K] {
	r := &LabelResolver[K]{
		choices: make([]Choice[K], 0, len(choices)),
		lookup:  make(map[K]string, len(choices)),
	}

	for _, c := range choices {
		if _, exists := r.lookup[c.Code]; exists {
			continue
		}
		r.lookup[c.Code] = c.Label
		r.choices = append(r.choices, c)
	}

	return r
}

// Label returns the declared label for code, or UnknownLabel.
func (r *LabelResolver[K]) Label(code K) string {
	if label, ok := r.Lookup(code); ok {
		return label
	}
	return UnknownLabel
}

// Lookup returns the declared label for code and whether the code is declared.
func (r *LabelResolver[K]) Lookup(code K) (string, bool) {
	if r == nil {
		return "", false
	}
	label, ok := r.lookup[code]
	return label, ok
}

// Choices returns a copy of the declared choices in declaration order.
func (r *LabelResolver[K]) Choices() []Choice[K] {
	if r == nil {
		return nil
	}
	out := make([]Choice[K], len(r.choices))
	copy(out, r.choices)
	return out
}

// Len returns the number of distinct declared codes.
func (r *LabelResolver[K]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.lookup)
}
