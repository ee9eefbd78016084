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
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"sync"

	"github.com/volatiletech/null/v8"

	cnserrors "github.com/abhi-shete/delicious-cake/pkg/errors"
	"github.com/abhi-shete/delicious-cake/pkg/header"
	"github.com/abhi-shete/delicious-cake/pkg/serializer"
)

var (
	//go:embed data/cakes.yaml
	sampleData []byte

	sampleOnce    sync.Once
	sampleCatalog *MemoryCatalog
	sampleErr     error
)

// Fixture is a document listing cake records.
type Fixture struct {
	header.Header `json:",inline" yaml:",inline"`

	Spec FixtureSpec `json:"spec" yaml:"spec"`
}

// FixtureSpec holds the records of a Fixture.
type FixtureSpec struct {
	Cakes []FixtureCake `json:"cakes" yaml:"cakes"`
}

// FixtureCake is the on-disk form of a Cake. A missing cake_type is stored as NULL.
type FixtureCake struct {
	ID       int64   `json:"id" yaml:"id"`
	CakeType *int    `json:"cake_type,omitempty" yaml:"cake_type,omitempty"`
	Message  string  `json:"message,omitempty" yaml:"message,omitempty"`
	Point    *Point  `json:"point,omitempty" yaml:"point,omitempty"`
	Points   []Point `json:"points,omitempty" yaml:"points,omitempty"`
}

// Record converts the fixture entry into a Cake.
func (f FixtureCake) Record() Cake {
	return Cake{
		ID:       f.ID,
		CakeType: null.IntFromPtr(f.CakeType),
		Message:  f.Message,
		Point:    f.Point,
		Points:   f.Points,
	}
}

// Catalog validates the fixture and builds a catalog from its records.
func (f *Fixture) Catalog() (*MemoryCatalog, error) {
	if err := f.Validate(header.KindCakeFixture); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "invalid cake fixture", err)
	}

	records := make([]Cake, 0, len(f.Spec.Cakes))
	for _, fc := range f.Spec.Cakes {
		records = append(records, fc.Record())
	}
	return NewMemoryCatalog(records...)
}

// LoadFixture reads a fixture from a local path, an http(s) URL, or a
// cm://namespace/name ConfigMap. File formats are picked from the extension.
func LoadFixture(ctx context.Context, path string, opts ...serializer.Option) (*MemoryCatalog, error) {
	if path == "" {
		return SampleCatalog()
	}

	f, err := serializer.FromFileWithContext[Fixture](ctx, path, opts...)
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			"failed to load cake fixture", err, map[string]any{"path": path})
	}

	c, err := f.Catalog()
	if err != nil {
		return nil, err
	}

	slog.Info("cake fixture loaded", "path", path, "count", c.Len())
	return c, nil
}

// SampleCatalog returns the catalog built from the embedded sample fixture.
func SampleCatalog() (*MemoryCatalog, error) {
	sampleOnce.Do(func() {
		var r *serializer.Reader
		r, sampleErr = serializer.NewReader(serializer.FormatYAML, bytes.NewReader(sampleData))
		if sampleErr != nil {
			return
		}

		var f Fixture
		if sampleErr = r.Deserialize(&f); sampleErr != nil {
			sampleErr = fmt.Errorf("failed to decode embedded sample: %w", sampleErr)
			return
		}
		sampleCatalog, sampleErr = f.Catalog()
	})
	return sampleCatalog, sampleErr
}
