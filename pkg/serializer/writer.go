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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

const defaultValueKey = "value"

// Writer handles serialization of cake data to various formats.
// Close must be called to release file handles when using NewOutputWriter.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter creates a new Writer with the specified format and output destination.
// If output is nil, os.Stdout will be used.
// If format is unknown, defaults to JSON format.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	return &Writer{
		format: normalize(format),
		output: output,
	}
}

// NewOutputWriter returns the writer for an output path: stdout when path is
// empty, a ConfigMap for cm://namespace/name, otherwise a file. Failing to
// reach the destination is an error; nothing falls back to stdout.
func NewOutputWriter(format Format, path string, opts ...Option) (WriteCloser, error) {
	trimmed := strings.TrimSpace(path)
	switch {
	case trimmed == "":
		return NewStdoutWriter(format), nil

	case IsConfigMapURI(trimmed):
		namespace, name, err := parseConfigMapURI(trimmed)
		if err != nil {
			return nil, err
		}
		k, err := newOptions(opts).kubeClient()
		if err != nil {
			return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
		}
		return NewConfigMapWriter(k, namespace, name, format), nil

	default:
		file, err := os.Create(trimmed)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file: %w", err)
		}
		return &Writer{
			format: normalize(format),
			output: file,
			closer: file,
		}, nil
	}
}

// NewStdoutWriter creates a new Writer that outputs to stdout in the specified format.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

func normalize(format Format) Format {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		return FormatJSON
	}
	return format
}

// Close releases the underlying file, if any. Safe to call more than once.
func (w *Writer) Close() error {
	if w == nil || w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil
	return err
}

// Serialize writes data in the configured format.
func (w *Writer) Serialize(ctx context.Context, data any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("serialize canceled: %w", err)
	}

	switch w.format {
	case FormatJSON:
		return w.serializeJSON(data)
	case FormatYAML:
		return w.serializeYAML(data)
	case FormatTable:
		return w.serializeTable(data)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

func (w *Writer) serializeJSON(data any) error {
	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func (w *Writer) serializeYAML(data any) error {
	encoder := yaml.NewEncoder(w.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return encoder.Close()
}

func (w *Writer) serializeTable(data any) error {
	var rows []tableRow
	flattenValue(&rows, reflect.ValueOf(data), "")
	if len(rows) == 0 {
		fmt.Fprintln(w.output, "<empty>")
		return nil
	}

	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%v\n", row.key, row.value)
	}
	return tw.Flush()
}

// tableRow is one flattened field. Rows keep traversal order: struct fields
// in declaration order, slice elements by index, map entries by sorted key.
type tableRow struct {
	key   string
	value any
}

var jsonMarshalerType = reflect.TypeFor[json.Marshaler]()

func flattenValue(rows *[]tableRow, val reflect.Value, prefix string) {
	if !val.IsValid() {
		return
	}

	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			if prefix != "" {
				*rows = append(*rows, tableRow{key: prefix})
			}
			return
		}
		val = val.Elem()
	}

	// Nullable scalars (null.Int and friends) render as their JSON form.
	if val.Kind() == reflect.Struct && val.Type().Implements(jsonMarshalerType) {
		if b, err := val.Interface().(json.Marshaler).MarshalJSON(); err == nil {
			*rows = append(*rows, tableRow{key: keyOrDefault(prefix), value: string(b)})
			return
		}
	}

	//nolint:exhaustive // We handle the common cases explicitly; all others go to default
	switch val.Kind() {
	case reflect.Struct:
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			name, inline, skip := fieldKey(field)
			if skip {
				continue
			}
			if inline {
				flattenValue(rows, val.Field(i), prefix)
				continue
			}
			flattenValue(rows, val.Field(i), joinKey(prefix, name))
		}
	case reflect.Map:
		keys := make([]string, 0, val.Len())
		byKey := make(map[string]reflect.Value, val.Len())
		for _, mapKey := range val.MapKeys() {
			k := fmt.Sprintf("%v", mapKey.Interface())
			keys = append(keys, k)
			byKey[k] = val.MapIndex(mapKey)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flattenValue(rows, byKey[k], joinKey(prefix, k))
		}
	case reflect.Slice, reflect.Array:
		if val.Len() == 0 {
			*rows = append(*rows, tableRow{key: keyOrDefault(prefix), value: "[]"})
			return
		}
		for i := 0; i < val.Len(); i++ {
			key := joinKey(prefix, fmt.Sprintf("[%d]", i))
			flattenValue(rows, val.Index(i), key)
		}
	default:
		*rows = append(*rows, tableRow{key: keyOrDefault(prefix), value: val.Interface()})
	}
}

// fieldKey names a struct field the way encoding/json would.
func fieldKey(field reflect.StructField) (name string, inline, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name, _, _ = strings.Cut(tag, ",")
	if name == "" {
		if field.Anonymous && indirect(field.Type).Kind() == reflect.Struct {
			return "", true, false
		}
		name = field.Name
	}
	return name, false, false
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func keyOrDefault(prefix string) string {
	if prefix == "" {
		return defaultValueKey
	}
	return prefix
}

func joinKey(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	if suffix == "" {
		return prefix
	}
	if strings.HasPrefix(suffix, "[") {
		return prefix + suffix
	}
	return prefix + "." + suffix
}
