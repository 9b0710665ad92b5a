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

package archive

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ChecksumFileName is the standard name for checksum files.
const ChecksumFileName = "checksums.txt"

// WriteChecksums creates a checksums.txt in bundleDir containing SHA256
// checksums for every regular file beneath it, with paths relative to
// bundleDir. Entries are sorted by path for stable output.
func WriteChecksums(bundleDir string) error {
	var checksums []string

	err := filepath.WalkDir(bundleDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s for checksum: %w", path, err)
		}

		hash := sha256.Sum256(data)
		relPath, err := filepath.Rel(bundleDir, path)
		if err != nil {
			relPath = path
		}

		checksums = append(checksums,
			fmt.Sprintf("%s  %s", hex.EncodeToString(hash[:]), relPath))
		return nil
	})
	if err != nil {
		return err
	}

	sort.Strings(checksums)
	content := strings.Join(checksums, "\n") + "\n"

	checksumPath := filepath.Join(bundleDir, ChecksumFileName)
	if err := os.WriteFile(checksumPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write checksums: %w", err)
	}

	slog.Debug("checksums generated",
		"file_count", len(checksums),
		"path", checksumPath,
	)

	return nil
}
