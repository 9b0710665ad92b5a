// Copyright (c) 2025, Seagate Technology LLC and/or its Affiliates.
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

package confstore

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Seagate/cortx-rgw-support-bundle/pkg/errors"
)

// YAMLURIScheme is the URI scheme for YAML-backed configuration stores,
// e.g. yaml:///etc/cortx/cluster.conf.
const YAMLURIScheme = "yaml://"

// KeySeparator separates levels of a key path, e.g. cortx>common>storage>log.
const KeySeparator = ">"

// Store is a read-only key-value view over the cluster configuration.
// Keys address nested mappings with KeySeparator-delimited paths.
type Store struct {
	uri  string
	data map[string]any
}

// Open loads the configuration store referenced by the given URI.
// Only the yaml:// scheme is supported. Returns a CONFIGURATION error if
// the scheme is unknown or the backing file cannot be read or parsed.
func Open(uri string) (*Store, error) {
	path, ok := strings.CutPrefix(uri, YAMLURIScheme)
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeConfiguration,
			"unsupported configuration store scheme",
			map[string]any{"uri": uri})
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeConfiguration,
			"failed to open configuration store", err,
			map[string]any{"uri": uri})
	}

	data := make(map[string]any)
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeConfiguration,
			"failed to parse configuration store", err,
			map[string]any{"uri": uri})
	}

	return &Store{uri: uri, data: data}, nil
}

// URI returns the URI the store was opened from.
func (s *Store) URI() string {
	return s.uri
}

// Get resolves a KeySeparator-delimited key path to its scalar value.
// Returns a CONFIGURATION error when any level of the path is absent or
// the addressed value is not a scalar.
func (s *Store) Get(key string) (string, error) {
	parts := strings.Split(key, KeySeparator)

	var cur any = s.data
	for _, part := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return "", s.missingKey(key)
		}
		cur, ok = m[part]
		if !ok {
			return "", s.missingKey(key)
		}
	}

	switch v := cur.(type) {
	case string:
		return v, nil
	case int, int64, float64, bool:
		return fmt.Sprintf("%v", v), nil
	default:
		return "", errors.NewWithContext(errors.ErrCodeConfiguration,
			"configuration key does not address a scalar value",
			map[string]any{"key": key, "uri": s.uri})
	}
}

func (s *Store) missingKey(key string) error {
	return errors.NewWithContext(errors.ErrCodeConfiguration,
		"required configuration key is absent",
		map[string]any{"key": key, "uri": s.uri})
}
