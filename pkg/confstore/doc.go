// Package confstore provides read access to the cluster configuration
// store and the local machine identity.
//
// The store is addressed by URI; only the yaml:// scheme is implemented:
//
//	store, err := confstore.Open("yaml:///etc/cortx/cluster.conf")
//	if err != nil {
//	    // store unreachable
//	}
//	logBase, err := store.Get("cortx>common>storage>log")
//
// Key paths use ">" to descend into nested mappings. A missing key is a
// CONFIGURATION error, never an empty string.
package confstore
