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
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/go-playground/validator/v10"

	cnserrors "github.com/abhi-shete/delicious-cake/pkg/errors"
)

// Catalog is the read-only source of cake records.
type Catalog interface {
	// List returns all cakes ordered by ID.
	List(ctx context.Context) ([]Cake, error)
	// Get returns the cake with the given ID or a NOT_FOUND error.
	Get(ctx context.Context, id int64) (*Cake, error)
}

// MemoryCatalog is an immutable in-memory Catalog.
type MemoryCatalog struct {
	cakes []Cake
	index map[int64]int
}

var validate = validator.New()

// NewMemoryCatalog validates the records and builds a catalog ordered by ID.
// Category codes are not validated: undeclared codes are served as "Unknown".
func NewMemoryCatalog(cakes ...Cake) (*MemoryCatalog, error) {
	c := &MemoryCatalog{
		cakes: make([]Cake, 0, len(cakes)),
		index: make(map[int64]int, len(cakes)),
	}

	for i := range cakes {
		rec := cloneCake(cakes[i])
		if err := validate.Struct(rec); err != nil {
			return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid cake record at index %d", i), err,
				map[string]any{"index": i, "id": rec.ID})
		}
		if _, exists := c.index[rec.ID]; exists {
			return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
				fmt.Sprintf("duplicate cake id %d", rec.ID),
				map[string]any{"index": i, "id": rec.ID})
		}
		c.index[rec.ID] = -1
		c.cakes = append(c.cakes, rec)
	}

	sort.Slice(c.cakes, func(i, j int) bool { return c.cakes[i].ID < c.cakes[j].ID })
	for i := range c.cakes {
		c.index[c.cakes[i].ID] = i
	}

	slog.Debug("cake catalog built", "count", len(c.cakes))

	return c, nil
}

// List implements Catalog.
func (c *MemoryCatalog) List(ctx context.Context) ([]Cake, error) {
	if err := ctx.Err(); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeTimeout, "cake listing canceled", err)
	}

	out := make([]Cake, 0, len(c.cakes))
	for _, rec := range c.cakes {
		out = append(out, cloneCake(rec))
	}
	return out, nil
}

// Get implements Catalog.
func (c *MemoryCatalog) Get(ctx context.Context, id int64) (*Cake, error) {
	if err := ctx.Err(); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeTimeout, "cake lookup canceled", err)
	}

	i, ok := c.index[id]
	if !ok {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeNotFound,
			fmt.Sprintf("cake %d not found", id), map[string]any{"id": id})
	}

	rec := cloneCake(c.cakes[i])
	return &rec, nil
}

// Len returns the number of cakes in the catalog.
func (c *MemoryCatalog) Len() int {
	return len(c.cakes)
}

// cloneCake copies the slice and pointer fields so callers cannot mutate the catalog.
func cloneCake(in Cake) Cake {
	out := in
	if in.Point != nil {
		p := *in.Point
		out.Point = &p
	}
	if in.Points != nil {
		out.Points = make([]Point, len(in.Points))
		copy(out.Points, in.Points)
	}
	return out
}
