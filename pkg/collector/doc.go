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

// Package collector provides interfaces and implementations for staging
// diagnostic artifacts into a support bundle.
//
// # Core Interface
//
// The Collector interface defines a single method for staging artifacts:
//
//	type Collector interface {
//	    Name() string
//	    Collect(ctx context.Context, stage *staging.Dir) (*Artifact, error)
//	}
//
// All collectors support context-based cancellation. Collectors run
// strictly in sequence; each reports either the files it staged or a
// skip with its reason. Only a non-nil error aborts the run.
//
// # Factory Pattern
//
// The Factory interface enables dependency injection and testing by
// abstracting collector creation:
//
//	factory := collector.NewDefaultFactory("rgw")
//	cfg := factory.CreateConfigCollector(configDir)
//
// # Available Collectors
//
// config: the per-node component configuration file (fatal when absent).
//
// logs: component client and setup logs, selected by filename pattern
// (skipped with a warning when the log directory is absent).
//
// coredump: recursive mirror of the crash-dump directory (opt-in).
//
// inventory: installed product packages via the system package manager
// (best-effort, bounded by a timeout).
//
// services: state of the target systemd units via D-Bus (best-effort).
package collector
