// Package bundle orchestrates support bundle generation: it resolves
// the node identity and cluster configuration, stages artifacts through
// the collectors in a fixed order, records a manifest of per-step
// outcomes, and compresses the staged tree into the target archive.
//
// The staging directory is private to one run and is removed on every
// exit path; an aborted run never leaves a partial archive behind.
package bundle
