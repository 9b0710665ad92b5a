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
	"os"
	"strings"

	"github.com/Seagate/cortx-rgw-support-bundle/pkg/errors"
)

// DefaultMachineIDPath is where systemd maintains the stable per-node id.
const DefaultMachineIDPath = "/etc/machine-id"

// MachineIDProvider exposes the stable identifier of the local node.
type MachineIDProvider interface {
	MachineID() (string, error)
}

// FileMachineID reads the machine identifier from a file, one id per file.
type FileMachineID struct {
	// Path of the id file. Empty means DefaultMachineIDPath.
	Path string
}

// MachineID returns the trimmed file content. A missing file or an empty
// id is a CONFIGURATION error: without a machine id the per-node config
// and log directories cannot be resolved.
func (p *FileMachineID) MachineID() (string, error) {
	path := p.Path
	if path == "" {
		path = DefaultMachineIDPath
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeConfiguration,
			"failed to read machine id", err,
			map[string]any{"path": path})
	}

	id := strings.TrimSpace(string(b))
	if id == "" {
		return "", errors.NewWithContext(errors.ErrCodeConfiguration,
			"machine id file is empty",
			map[string]any{"path": path})
	}

	return id, nil
}
