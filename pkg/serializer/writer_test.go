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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/volatiletech/null/v8"
	"gopkg.in/yaml.v3"
	"k8s.io/client-go/kubernetes/fake"
)

type testPoint struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

type TestBase struct {
	ResourceID  int64  `json:"resource_id" yaml:"resource_id"`
	CakeType    string `json:"cake_type" yaml:"cake_type"`
	ResourceURI string `json:"resource_uri" yaml:"resource_uri"`
}

type testExtended struct {
	TestBase `yaml:",inline"`
	Point    *testPoint  `json:"point" yaml:"point"`
	Points   []testPoint `json:"points" yaml:"points"`
	note     string
}

func sampleExtended() testExtended {
	return testExtended{
		TestBase: TestBase{ResourceID: 1, CakeType: "Chocolate", ResourceURI: "/v1/cakes/1"},
		Point:    &testPoint{X: 1, Y: 2},
		Points:   []testPoint{{X: 3, Y: 4}},
		note:     "hidden",
	}
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	if err := writer.Serialize(context.Background(), []testExtended{sampleExtended()}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(result))
	}
	for _, key := range []string{"resource_id", "cake_type", "resource_uri", "point", "points"} {
		if _, ok := result[0][key]; !ok {
			t.Errorf("missing key %q in %v", key, result[0])
		}
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	if err := writer.Serialize(context.Background(), sampleExtended()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if result["cake_type"] != "Chocolate" {
		t.Errorf("cake_type = %v, want Chocolate", result["cake_type"])
	}
	if _, ok := result["testbase"]; ok {
		t.Error("embedded struct should be inlined")
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), []testExtended{sampleExtended()}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "FIELD") || !strings.Contains(output, "VALUE") {
		t.Error("Expected table header not found")
	}

	for _, key := range []string{"[0].resource_id", "[0].cake_type", "[0].point.x", "[0].points[0].y"} {
		if !strings.Contains(output, key) {
			t.Errorf("Expected flattened key %q not found in:\n%s", key, output)
		}
	}
	if strings.Contains(output, "hidden") {
		t.Error("unexported field should not be rendered")
	}
}

func TestWriter_SerializeTable_EmptyAndNil(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testExtended{Points: []testPoint{}}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "points") || !strings.Contains(output, "[]") {
		t.Errorf("empty slice should render as [], got:\n%s", output)
	}
	if !strings.Contains(output, "<nil>") {
		t.Errorf("nil point should render as <nil>, got:\n%s", output)
	}
}

func TestWriter_SerializeTable_NullValues(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := struct {
		Set   null.Int `json:"set"`
		Unset null.Int `json:"unset"`
		Skip  string   `json:"-"`
	}{Set: null.IntFrom(3), Skip: "hidden"}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "3") {
		t.Errorf("expected set value, got:\n%s", output)
	}
	if !strings.Contains(output, "null") {
		t.Errorf("expected null for unset value, got:\n%s", output)
	}
	if strings.Contains(output, "hidden") {
		t.Error("json:\"-\" field should be skipped")
	}
}

func TestWriter_SerializeTable_Scalar(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), "Vanilla"); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), defaultValueKey) {
		t.Errorf("expected %q key, got:\n%s", defaultValueKey, buf.String())
	}
}

func TestWriter_SerializeTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), map[string]any{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("expected <empty>, got %q", buf.String())
	}
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := NewWriter(FormatJSON, &buf).Serialize(ctx, "x"); err == nil {
		t.Fatal("expected error for canceled context")
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written, got %q", buf.String())
	}
}

func TestWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter("invalid", &buf)

	if err := writer.Serialize(context.Background(), map[string]int{"a": 1}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestNewOutputWriter(t *testing.T) {
	t.Run("empty path uses stdout", func(t *testing.T) {
		w, err := NewOutputWriter(FormatJSON, "  ")
		if err != nil {
			t.Fatalf("NewOutputWriter() error = %v", err)
		}
		fw, ok := w.(*Writer)
		if !ok || fw.output != os.Stdout {
			t.Errorf("expected stdout writer, got %#v", w)
		}
		if err := w.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	t.Run("writes file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.yaml")
		w, err := NewOutputWriter(FormatYAML, path)
		if err != nil {
			t.Fatalf("NewOutputWriter() error = %v", err)
		}
		if err := w.Serialize(context.Background(), testPoint{X: 1, Y: 2}); err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if err := w.Close(); err != nil {
			t.Errorf("second Close() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if !strings.Contains(string(data), "x: 1") {
			t.Errorf("unexpected file content %q", data)
		}
	})

	t.Run("unwritable path is an error", func(t *testing.T) {
		w, err := NewOutputWriter(FormatJSON, filepath.Join(t.TempDir(), "missing", "out.json"))
		if err == nil {
			t.Fatalf("expected error, got writer %#v", w)
		}
	})

	t.Run("invalid ConfigMap URI is an error", func(t *testing.T) {
		if _, err := NewOutputWriter(FormatJSON, "cm://bakery"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("ConfigMap URI uses the given client", func(t *testing.T) {
		w, err := NewOutputWriter(FormatYAML, "cm://bakery/rendered", WithKubeClient(fake.NewClientset()))
		if err != nil {
			t.Fatalf("NewOutputWriter() error = %v", err)
		}
		cw, ok := w.(*ConfigMapWriter)
		if !ok {
			t.Fatalf("expected *ConfigMapWriter, got %T", w)
		}
		if cw.namespace != "bakery" || cw.name != "rendered" || cw.format != FormatYAML {
			t.Errorf("unexpected writer %+v", cw)
		}
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" table ", FormatTable, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriter_SerializeTable_RowOrder(t *testing.T) {
	rows := make([]TestBase, 12)
	for i := range rows {
		rows[i] = TestBase{ResourceID: int64(i), CakeType: "Vanilla"}
	}

	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), rows); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var ids []string
	for _, line := range strings.Split(buf.String(), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && strings.HasSuffix(fields[0], ".resource_id") {
			ids = append(ids, fields[0])
		}
	}

	if len(ids) != len(rows) {
		t.Fatalf("got %d resource_id rows, want %d:\n%s", len(ids), len(rows), buf.String())
	}
	for i, key := range ids {
		if want := fmt.Sprintf("[%d].resource_id", i); key != want {
			t.Errorf("row %d = %q, want %q", i, key, want)
		}
	}
}

func TestWriter_SerializeTable_FieldAndMapOrder(t *testing.T) {
	data := struct {
		Zeta  string            `json:"zeta"`
		Alpha string            `json:"alpha"`
		Meta  map[string]string `json:"meta"`
	}{
		Zeta:  "z",
		Alpha: "a",
		Meta:  map[string]string{"version": "v1", "source": "sample"},
	}

	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var keys []string
	for _, line := range lines[2:] {
		keys = append(keys, strings.Fields(line)[0])
	}

	want := []string{"zeta", "alpha", "meta.source", "meta.version"}
	if strings.Join(keys, ",") != strings.Join(want, ",") {
		t.Errorf("keys = %v, want %v", keys, want)
	}
}
