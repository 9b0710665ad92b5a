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

package staging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Seagate/cortx-rgw-support-bundle/pkg/errors"
)

// scratchNamespace is the directory under the system temp dir that holds
// all staging directories produced by this tool.
const scratchNamespace = "cortx-support"

// Dir is an exclusively-owned scratch directory where bundle artifacts are
// assembled before compression. It exists only for the duration of one
// generate run; Remove must be called on every exit path.
type Dir struct {
	path string
}

// Prepare creates the staging directory for the given component and bundle
// id under the system temp dir. A leftover directory from a prior aborted
// run with the same bundle id is purged first, so re-entry after a crash
// is idempotent. Distinct bundle ids never collide.
func Prepare(component, bundleID string) (*Dir, error) {
	return PrepareAt(filepath.Join(os.TempDir(), scratchNamespace), component, bundleID)
}

// PrepareAt is Prepare with an explicit base directory.
func PrepareAt(base, component, bundleID string) (*Dir, error) {
	path := filepath.Join(base, fmt.Sprintf("%s_%s", component, bundleID))

	if _, err := os.Stat(path); err == nil {
		slog.Warn("purging leftover staging directory from a prior run", "path", path)
		if err := os.RemoveAll(path); err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInternal,
				"failed to purge leftover staging directory", err,
				map[string]any{"path": path})
		}
	}

	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to create staging directory", err,
			map[string]any{"path": path})
	}

	slog.Debug("staging directory ready", "path", path)
	return &Dir{path: path}, nil
}

// Path returns the absolute staging directory path.
func (d *Dir) Path() string {
	return d.path
}

// BaseName returns the staging directory base name. The archive writer
// uses it as the single top-level entry name inside the bundle.
func (d *Dir) BaseName() string {
	return filepath.Base(d.path)
}

// Join resolves a path inside the staging directory.
func (d *Dir) Join(elem ...string) string {
	return filepath.Join(append([]string{d.path}, elem...)...)
}

// Remove deletes the staging directory and everything beneath it.
// Safe to call more than once.
func (d *Dir) Remove() error {
	if err := os.RemoveAll(d.path); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to remove staging directory", err,
			map[string]any{"path": d.path})
	}
	return nil
}
