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
	"fmt"

	cnserrors "github.com/abhi-shete/delicious-cake/pkg/errors"
	"github.com/abhi-shete/delicious-cake/pkg/routes"
)

// CakeListView is the summary projection of a cake.
type CakeListView struct {
	ResourceID  int64  `json:"resource_id" yaml:"resource_id"`
	CakeType    string `json:"cake_type" yaml:"cake_type"`
	ResourceURI string `json:"resource_uri" yaml:"resource_uri"`
}

// CakeDetailView adds the message to the summary projection.
type CakeDetailView struct {
	CakeListView `yaml:",inline"`

	Message string `json:"message" yaml:"message"`
}

// CakePointListView adds the embedded points to the summary projection.
// Point is null when the record has none; Points is never null.
type CakePointListView struct {
	CakeListView `yaml:",inline"`

	Point  *PointView  `json:"point" yaml:"point"`
	Points []PointView `json:"points" yaml:"points"`
}

// PointView is the projection of a Point.
type PointView struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// NewPointView projects a single point.
func NewPointView(p Point) PointView {
	return PointView{X: p.X, Y: p.Y}
}

// NewPointViews projects a list of points. The result is never nil.
func NewPointViews(points []Point) []PointView {
	out := make([]PointView, 0, len(points))
	for _, p := range points {
		out = append(out, NewPointView(p))
	}
	return out
}

// NewCakeListView projects c into its summary view. The only failure is
// reversing the resource URI.
func NewCakeListView(c *Cake, rev routes.Reverser) (CakeListView, error) {
	if c == nil {
		return CakeListView{}, cnserrors.New(cnserrors.ErrCodeInternal, "cannot project nil cake")
	}

	uri, err := resourceURI(c, rev)
	if err != nil {
		return CakeListView{}, err
	}

	return CakeListView{
		ResourceID:  c.ID,
		CakeType:    CakeTypeLabel(c.CakeType),
		ResourceURI: uri,
	}, nil
}

// NewCakeDetailView projects c into its detail view.
func NewCakeDetailView(c *Cake, rev routes.Reverser) (CakeDetailView, error) {
	base, err := NewCakeListView(c, rev)
	if err != nil {
		return CakeDetailView{}, err
	}

	return CakeDetailView{
		CakeListView: base,
		Message:      c.Message,
	}, nil
}

// NewCakePointListView projects c into its point view.
func NewCakePointListView(c *Cake, rev routes.Reverser) (CakePointListView, error) {
	base, err := NewCakeListView(c, rev)
	if err != nil {
		return CakePointListView{}, err
	}

	v := CakePointListView{
		CakeListView: base,
		Points:       NewPointViews(c.Points),
	}
	if c.Point != nil {
		p := NewPointView(*c.Point)
		v.Point = &p
	}
	return v, nil
}

// NewCakeListViews projects every cake into its summary view.
func NewCakeListViews(cakes []Cake, rev routes.Reverser) ([]CakeListView, error) {
	return projectAll(cakes, rev, NewCakeListView)
}

// NewCakeDetailViews projects every cake into its detail view.
func NewCakeDetailViews(cakes []Cake, rev routes.Reverser) ([]CakeDetailView, error) {
	return projectAll(cakes, rev, NewCakeDetailView)
}

// NewCakePointListViews projects every cake into its point view.
func NewCakePointListViews(cakes []Cake, rev routes.Reverser) ([]CakePointListView, error) {
	return projectAll(cakes, rev, NewCakePointListView)
}

func projectAll[V any](cakes []Cake, rev routes.Reverser, project func(*Cake, routes.Reverser) (V, error)) ([]V, error) {
	out := make([]V, 0, len(cakes))
	for i := range cakes {
		v, err := project(&cakes[i], rev)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func resourceURI(c *Cake, rev routes.Reverser) (string, error) {
	if rev == nil {
		return "", cnserrors.New(cnserrors.ErrCodeInternal, "no route reverser configured")
	}

	uri, err := rev.Reverse(RouteCakeDetail, c.ID)
	if err != nil {
		return "", cnserrors.WrapWithContext(cnserrors.ErrCodeInternal,
			fmt.Sprintf("failed to build resource uri for cake %d", c.ID), err,
			map[string]any{"route": RouteCakeDetail})
	}
	return uri, nil
}
