package bundle

import (
	"time"
)

// Component is the subsystem whose artifacts this tool collects: the
// object-storage gateway.
const Component = "rgw"

// Product is the storage product name, used for conf-store key paths and
// default locations.
const Product = "cortx"

// Cluster configuration store keys resolved during generation.
const (
	// LogBaseKey addresses the cluster-wide log base directory.
	LogBaseKey = "cortx>common>storage>log"

	// ConfigBaseKey addresses the cluster-wide config base directory.
	ConfigBaseKey = "cortx>common>storage>config"
)

// Request describes one support bundle invocation. Immutable once
// constructed; supplied entirely by the caller.
type Request struct {
	// BundleID is the caller-supplied id, used verbatim in the archive
	// filename. Required.
	BundleID string

	// TargetPath is the output base directory; the archive lands in
	// <TargetPath>/<component>/.
	TargetPath string

	// ClusterConfURI locates the cluster configuration store,
	// e.g. yaml:///etc/cortx/cluster.conf.
	ClusterConfURI string

	// Coredumps gates crash-dump collection.
	Coredumps bool

	// Services are target systemd unit names to capture state for.
	Services []string

	// Window is the requested log capture window. Recorded in the
	// manifest; not enforced during collection.
	Window time.Duration

	// SizeLimit is the requested per-node size cap in bytes. Recorded
	// in the manifest; not enforced during collection.
	SizeLimit uint64

	// Binlogs, Stacktrace and Modules are accepted for interface
	// compatibility and recorded in the manifest only.
	Binlogs    bool
	Stacktrace bool
	Modules    string
}

// StepStatus is the explicit outcome of one collection step.
type StepStatus string

const (
	// StatusCollected means the step staged at least its expected artifacts.
	StatusCollected StepStatus = "collected"
	// StatusSkipped means the step's source was unavailable and the run
	// continued.
	StatusSkipped StepStatus = "skipped"
	// StatusFailed means the step aborted the run.
	StatusFailed StepStatus = "failed"
)

// StepResult records the outcome of one collection step.
type StepResult struct {
	Name     string        `json:"name" yaml:"name"`
	Status   StepStatus    `json:"status" yaml:"status"`
	Reason   string        `json:"reason,omitempty" yaml:"reason,omitempty"`
	Files    []string      `json:"files,omitempty" yaml:"files,omitempty"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}
