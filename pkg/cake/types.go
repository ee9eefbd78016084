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
	"github.com/volatiletech/null/v8"

	"github.com/abhi-shete/delicious-cake/pkg/entity"
)

// CakeType is the stored category code of a cake.
type CakeType int

// Declared cake types.
const (
	CakeTypeChocolate  CakeType = 1
	CakeTypeVanilla    CakeType = 2
	CakeTypeCarrot     CakeType = 3
	CakeTypeRedVelvet  CakeType = 4
	CakeTypeCheesecake CakeType = 5
)

// cakeTypes is built once from the declared choices and never modified.
var cakeTypes = entity.NewLabelResolver(
	entity.Choice[CakeType]{Code: CakeTypeChocolate, Label: "Chocolate"},
	entity.Choice[CakeType]{Code: CakeTypeVanilla, Label: "Vanilla"},
	entity.Choice[CakeType]{Code: CakeTypeCarrot, Label: "Carrot"},
	entity.Choice[CakeType]{Code: CakeTypeRedVelvet, Label: "Red Velvet"},
	entity.Choice[CakeType]{Code: CakeTypeCheesecake, Label: "Cheesecake"},
)

// String returns the display label of the cake type.
func (t CakeType) String() string {
	return cakeTypes.Label(t)
}

// IsValid reports whether t is one of the declared cake types.
func (t CakeType) IsValid() bool {
	_, ok := cakeTypes.Lookup(t)
	return ok
}

// CakeTypeLabel resolves a stored category code to its display label.
// NULL and undeclared codes resolve to entity.UnknownLabel.
func CakeTypeLabel(code null.Int) string {
	if !code.Valid {
		return entity.UnknownLabel
	}
	return cakeTypes.Label(CakeType(code.Int))
}

// CakeTypeChoices returns the declared cake types in declaration order.
func CakeTypeChoices() []entity.Choice[CakeType] {
	return cakeTypes.Choices()
}

// Point is an (x, y) value embedded in a cake record.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Cake is a stored cake record. Records are read-only to this package.
type Cake struct {
	ID       int64    `validate:"gt=0"`
	CakeType null.Int
	Message  string `validate:"max=4096"`
	Point    *Point
	Points   []Point
}
