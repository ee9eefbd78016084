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

package header

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// APIVersionV1 is the current document schema version.
const APIVersionV1 = "cake.delicious.dev/v1"

// Kind represents the type of document.
type Kind string

// Valid Kind constants for all document types.
const (
	KindCakeFixture   Kind = "CakeFixture"
	KindCakeRendering Kind = "CakeRendering"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k *Kind) IsValid() bool {
	switch *k {
	case KindCakeFixture, KindCakeRendering:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// New creates a new Header instance with the provided functional options.
// The Metadata map is initialized automatically.
func New(opts ...Option) *Header {
	h := &Header{
		Metadata: make(map[string]string),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Header contains metadata and versioning information for documents.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs describing the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// InitWithClock sets kind and apiVersion and stamps the clock's current time
// and version into Metadata. Existing metadata entries are kept.
func (h *Header) InitWithClock(clock clockwork.Clock, kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	if h.Metadata == nil {
		h.Metadata = make(map[string]string)
	}

	h.Metadata["timestamp"] = clock.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata["version"] = version
	}
}

// Validate checks that the header describes a document of the expected kind
// and a supported API version. An empty APIVersion is accepted as v1.
func (h *Header) Validate(expected Kind) error {
	if !h.Kind.IsValid() {
		return fmt.Errorf("unknown document kind %q", h.Kind)
	}
	if h.Kind != expected {
		return fmt.Errorf("unexpected document kind %q, want %q", h.Kind, expected)
	}
	if h.APIVersion != "" && h.APIVersion != APIVersionV1 {
		return fmt.Errorf("unsupported apiVersion %q, want %q", h.APIVersion, APIVersionV1)
	}
	return nil
}
