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
	"fmt"
	"log/slog"
	"strings"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/abhi-shete/delicious-cake/pkg/defaults"
	"github.com/abhi-shete/delicious-cake/pkg/k8s/client"
)

const (
	// ConfigMapURIScheme prefixes ConfigMap paths: cm://namespace/name.
	ConfigMapURIScheme = "cm://"

	configMapDataPrefix = "cakes"
	configMapFormatKey  = "format"
	configMapFieldOwner = "cakectl"
)

// IsConfigMapURI reports whether path addresses a ConfigMap.
func IsConfigMapURI(path string) bool {
	return strings.HasPrefix(strings.TrimSpace(path), ConfigMapURIScheme)
}

// Option configures how cm:// paths reach the cluster.
type Option func(*options)

type options struct {
	kube       client.Interface
	kubeconfig string
}

// WithKubeClient uses k for cm:// paths instead of building a client.
func WithKubeClient(k client.Interface) Option {
	return func(o *options) {
		o.kube = k
	}
}

// WithKubeconfig builds the client for cm:// paths from the given kubeconfig.
// An empty path keeps the default discovery.
func WithKubeconfig(path string) Option {
	return func(o *options) {
		o.kubeconfig = path
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) kubeClient() (client.Interface, error) {
	if o.kube != nil {
		return o.kube, nil
	}
	if o.kubeconfig != "" {
		k, _, err := client.BuildKubeClient(o.kubeconfig)
		if err != nil {
			return nil, err
		}
		return k, nil
	}
	return client.GetKubeClient()
}

// ConfigMapWriter stores serialized data in a ConfigMap, creating it when
// missing and replacing its data otherwise. The payload lives under
// "cakes.<ext>" next to a "format" key.
type ConfigMapWriter struct {
	client    client.Interface
	namespace string
	name      string
	format    Format
}

// NewConfigMapWriter creates a writer for namespace/name. Unknown formats
// fall back to JSON.
func NewConfigMapWriter(k client.Interface, namespace, name string, format Format) *ConfigMapWriter {
	return &ConfigMapWriter{
		client:    k,
		namespace: namespace,
		name:      name,
		format:    normalize(format),
	}
}

// Serialize renders data and writes it to the ConfigMap.
func (w *ConfigMapWriter) Serialize(ctx context.Context, data any) error {
	if w.client == nil {
		return fmt.Errorf("no kubernetes client for ConfigMap %s/%s", w.namespace, w.name)
	}

	var buf bytes.Buffer
	if err := NewWriter(w.format, &buf).Serialize(ctx, data); err != nil {
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	payload := map[string]string{
		configMapDataKey(w.format): buf.String(),
		configMapFormatKey:         string(w.format),
	}
	labels := map[string]string{
		"app.kubernetes.io/name":       "delicious-cake",
		"app.kubernetes.io/managed-by": configMapFieldOwner,
	}

	cms := w.client.CoreV1().ConfigMaps(w.namespace)
	existing, err := cms.Get(writeCtx, w.name, metav1.GetOptions{})
	switch {
	case apierrors.IsNotFound(err):
		cm := &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: w.name, Namespace: w.namespace, Labels: labels},
			Data:       payload,
		}
		if _, err := cms.Create(writeCtx, cm, metav1.CreateOptions{FieldManager: configMapFieldOwner}); err != nil {
			return fmt.Errorf("failed to create ConfigMap %s/%s: %w", w.namespace, w.name, err)
		}
	case err != nil:
		return fmt.Errorf("failed to get ConfigMap %s/%s: %w", w.namespace, w.name, err)
	default:
		if existing.Labels == nil {
			existing.Labels = map[string]string{}
		}
		for k, v := range labels {
			existing.Labels[k] = v
		}
		existing.Data = payload
		if _, err := cms.Update(writeCtx, existing, metav1.UpdateOptions{FieldManager: configMapFieldOwner}); err != nil {
			return fmt.Errorf("failed to update ConfigMap %s/%s: %w", w.namespace, w.name, err)
		}
	}

	slog.Info("wrote ConfigMap", "namespace", w.namespace, "name", w.name, "format", w.format)
	return nil
}

// Close is a no-op; it satisfies WriteCloser.
func (w *ConfigMapWriter) Close() error {
	return nil
}

func configMapDataKey(format Format) string {
	ext := string(format)
	if format == FormatTable {
		ext = "txt"
	}
	return configMapDataPrefix + "." + ext
}

// readConfigMap returns the readable payload stored at cm://namespace/name.
// The "format" key picks the payload; without it YAML is tried before JSON.
func readConfigMap(ctx context.Context, k client.Interface, uri string) (Format, []byte, error) {
	namespace, name, err := parseConfigMapURI(uri)
	if err != nil {
		return "", nil, err
	}

	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cm, err := k.CoreV1().ConfigMaps(namespace).Get(readCtx, name, metav1.GetOptions{})
	if err != nil {
		return "", nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	candidates := []Format{FormatYAML, FormatJSON}
	if f, ferr := ParseFormat(cm.Data[configMapFormatKey]); ferr == nil {
		if err := checkReadable(f); err != nil {
			return "", nil, fmt.Errorf("ConfigMap %s/%s: %w", namespace, name, err)
		}
		candidates = []Format{f}
	}

	for _, f := range candidates {
		if content, ok := cm.Data[configMapDataKey(f)]; ok {
			slog.Debug("reading from ConfigMap", "namespace", namespace, "name", name, "format", f)
			return f, []byte(content), nil
		}
	}
	return "", nil, fmt.Errorf("ConfigMap %s/%s has no %s data", namespace, name, configMapDataPrefix)
}

// parseConfigMapURI splits cm://namespace/name.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	uri = strings.TrimSpace(uri)
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI %q: must start with %s", uri, ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI %q: expected %snamespace/name", uri, ConfigMapURIScheme)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])
	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI %q: namespace cannot be empty", uri)
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI %q: name cannot be empty", uri)
	}
	return namespace, name, nil
}
