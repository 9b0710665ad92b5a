/*
Copyright © 2025 Seagate Technology LLC and/or its Affiliates
SPDX-License-Identifier: Apache-2.0
*/

// Package archive produces the output artifact of a support bundle run:
// a gzip-compressed tarball of the staging directory, rooted under a
// single top-level entry, plus a checksums.txt for integrity verification.
//
// The checksums.txt file format is compatible with sha256sum:
//
//	sha256sum -c checksums.txt
package archive
