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

package defaults

import "time"

// Collector timeouts for data collection operations.
const (
	// InventoryTimeout bounds the external package-query command. The
	// query is best-effort; a hung package manager must not block the
	// whole run.
	InventoryTimeout = 30 * time.Second

	// ServicesTimeout bounds systemd D-Bus property queries.
	ServicesTimeout = 10 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// GenerateTimeout is the default ceiling for one full bundle
	// generation run.
	GenerateTimeout = 10 * time.Minute
)
