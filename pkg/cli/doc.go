// Package cli implements the command-line interface for the rgwsb
// support bundle tool.
//
// # Overview
//
// rgwsb collects object-storage gateway diagnostics from the local node
// and packages them into a single compressed archive for support
// analysis. It is a single command with no subcommands.
//
// # Usage
//
//	rgwsb -b <bundle_id> [-t DIR] [-c URI] [flags]
//
// The archive is written to <target>/rgw/rgw_<bundle_id>.tar.gz.
//
// # Flags
//
//	-b, --bundle_id     Bundle id, used verbatim in the archive filename (required)
//	-t, --target        Output base directory (default: /var/cortx/support_bundle)
//	-c, --cluster_conf  Cluster configuration store URI (default: yaml:///etc/cortx/cluster.conf)
//	-s, --services      Target service names, repeatable
//	-d, --duration      Log capture window, ISO-8601 (default: P5D)
//	    --size_limit    Per-node size cap (default: 500MB)
//	    --binlogs       'true' or 'false' (default: false)
//	    --coredumps     'true' or 'false' (default: false)
//	    --stacktrace    'true' or 'false' (default: false)
//	    --modules       Free-text module list
//	-o, --output        Write the run result to a file instead of stdout
//	-f, --format        Result format: json, yaml, table (default: yaml)
//	    --log-level     Logging verbosity (default: info)
//
// Boolean flags accept only the literal strings "true" and "false",
// case-insensitively; anything else is a parse error.
//
// # Exit Codes
//
//	0  Success
//	1  Interrupt or any other failure
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/Seagate/cortx-rgw-support-bundle/pkg/cli.version=1.0.0'"
package cli
