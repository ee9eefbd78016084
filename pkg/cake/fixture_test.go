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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
	"k8s.io/utils/ptr"

	cnserrors "github.com/abhi-shete/delicious-cake/pkg/errors"
	"github.com/abhi-shete/delicious-cake/pkg/serializer"
)

const jsonFixture = `{
  "kind": "CakeFixture",
  "apiVersion": "cake.delicious.dev/v1",
  "spec": {
    "cakes": [
      {"id": 10, "cake_type": 3, "message": "carrot", "points": [{"x": 1, "y": 1}]},
      {"id": 11}
    ]
  }
}`

func TestSampleCatalog(t *testing.T) {
	c, err := SampleCatalog()
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())

	ctx := context.Background()

	first, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Chocolate", CakeTypeLabel(first.CakeType))
	require.NotNil(t, first.Point)
	assert.Len(t, first.Points, 2)

	mystery, err := c.Get(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 99, mystery.CakeType.Int)

	undecided, err := c.Get(ctx, 5)
	require.NoError(t, err)
	assert.False(t, undecided.CakeType.Valid)

	again, err := SampleCatalog()
	require.NoError(t, err)
	assert.Same(t, c, again)
}

func TestLoadFixture_EmptyPathUsesSample(t *testing.T) {
	c, err := LoadFixture(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())
}

func TestLoadFixture_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cakes.json")
	require.NoError(t, os.WriteFile(path, []byte(jsonFixture), 0o600))

	c, err := LoadFixture(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	got, err := c.Get(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Carrot", CakeTypeLabel(got.CakeType))
	assert.Equal(t, []Point{{X: 1, Y: 1}}, got.Points)
}

func TestLoadFixture_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(jsonFixture))
	}))
	defer srv.Close()

	c, err := LoadFixture(context.Background(), srv.URL+"/cakes.json")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestLoadFixture_ConfigMap(t *testing.T) {
	k := fake.NewClientset(&corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "cakes", Namespace: "bakery"},
		Data:       map[string]string{"format": "json", "cakes.json": jsonFixture},
	})

	c, err := LoadFixture(context.Background(), "cm://bakery/cakes", serializer.WithKubeClient(k))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	got, err := c.Get(context.Background(), 11)
	require.NoError(t, err)
	assert.False(t, got.CakeType.Valid)

	_, err = LoadFixture(context.Background(), "cm://bakery/absent", serializer.WithKubeClient(k))
	require.Error(t, err)
	assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeInvalidRequest), "got %v", err)
}

func TestLoadFixture_Errors(t *testing.T) {
	dir := t.TempDir()

	wrongKind := filepath.Join(dir, "wrong.yaml")
	require.NoError(t, os.WriteFile(wrongKind, []byte("kind: CakeRendering\nspec:\n  cakes: []\n"), 0o600))

	badVersion := filepath.Join(dir, "version.yaml")
	require.NoError(t, os.WriteFile(badVersion, []byte("kind: CakeFixture\napiVersion: cake.delicious.dev/v2\n"), 0o600))

	duplicate := filepath.Join(dir, "dup.yaml")
	require.NoError(t, os.WriteFile(duplicate, []byte("kind: CakeFixture\nspec:\n  cakes:\n    - id: 1\n    - id: 1\n"), 0o600))

	for _, path := range []string{wrongKind, badVersion, duplicate, filepath.Join(dir, "missing.yaml")} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			_, err := LoadFixture(context.Background(), path)
			require.Error(t, err)
			assert.True(t, cnserrors.IsCode(err, cnserrors.ErrCodeInvalidRequest), "got %v", err)
		})
	}
}

func TestFixtureCakeRecord(t *testing.T) {
	rec := FixtureCake{ID: 1, CakeType: ptr.To(2), Message: "m"}.Record()
	assert.True(t, rec.CakeType.Valid)
	assert.Equal(t, 2, rec.CakeType.Int)

	rec = FixtureCake{ID: 1}.Record()
	assert.False(t, rec.CakeType.Valid)
}
