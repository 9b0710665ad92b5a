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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/Seagate/cortx-rgw-support-bundle/pkg/bundle"
	"github.com/Seagate/cortx-rgw-support-bundle/pkg/defaults"
	"github.com/Seagate/cortx-rgw-support-bundle/pkg/duration"
	"github.com/Seagate/cortx-rgw-support-bundle/pkg/errors"
	"github.com/Seagate/cortx-rgw-support-bundle/pkg/logging"
	"github.com/Seagate/cortx-rgw-support-bundle/pkg/serializer"
)

// Default values for optional flags.
const (
	DefaultTargetPath     = "/var/" + bundle.Product + "/support_bundle"
	DefaultClusterConfURI = "yaml:///etc/" + bundle.Product + "/cluster.conf"
	DefaultLogWindow      = "P5D"
	DefaultSizeLimit      = "500MB"
)

// generateCmdOptions holds parsed options for the generate command.
type generateCmdOptions struct {
	bundleID   string
	targetPath string
	confURI    string
	services   []string
	window     time.Duration
	sizeLimit  uint64
	binlogs    bool
	coredumps  bool
	stacktrace bool
	modules    string
	output     string
	format     serializer.Format
	logLevel   string
}

// parseGenerateCmdOptions parses and validates command options.
func parseGenerateCmdOptions(cmd *cli.Command) (*generateCmdOptions, error) {
	opts := &generateCmdOptions{
		bundleID:   cmd.String("bundle_id"),
		targetPath: cmd.String("target"),
		confURI:    cmd.String("cluster_conf"),
		services:   cmd.StringSlice("services"),
		modules:    cmd.String("modules"),
		output:     cmd.String("output"),
		format:     serializer.Format(cmd.String("format")),
		logLevel:   cmd.String("log-level"),
	}

	if opts.format.IsUnknown() {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("--format must be one of %s, got %q",
				strings.Join(serializer.SupportedFormats(), ", "), opts.format))
	}

	var err error
	if opts.window, err = duration.Parse(cmd.String("duration")); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("invalid --duration value %q", cmd.String("duration")), err)
	}
	if opts.sizeLimit, err = humanize.ParseBytes(cmd.String("size_limit")); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("invalid --size_limit value %q", cmd.String("size_limit")), err)
	}

	if opts.binlogs, err = parseBoolFlag(cmd, "binlogs"); err != nil {
		return nil, err
	}
	if opts.coredumps, err = parseBoolFlag(cmd, "coredumps"); err != nil {
		return nil, err
	}
	if opts.stacktrace, err = parseBoolFlag(cmd, "stacktrace"); err != nil {
		return nil, err
	}

	return opts, nil
}

// parseBoolFlag parses a string-valued boolean flag. Only the literal
// strings "true" and "false" are accepted, case-insensitively.
func parseBoolFlag(cmd *cli.Command, flagName string) (bool, error) {
	raw := cmd.String(flagName)
	switch strings.ToLower(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errors.New(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("--%s must be 'true' or 'false', got %q", flagName, raw))
	}
}

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Generate an object-storage gateway support bundle",
		Description: `Collects gateway diagnostics from this node and packages them into a
single compressed archive for support analysis:

  - gateway configuration file for this node
  - gateway and setup log files
  - crash dumps (opt-in via --coredumps)
  - installed product package inventory
  - systemd service state for requested services

The archive lands at <target>/rgw/rgw_<bundle_id>.tar.gz and contains a
manifest recording the outcome of every collection step.

# Examples

Collect into the default location:
  rgwsb -b SB42

Collect crash dumps and service state into a custom target:
  rgwsb -b SB42 -t /mnt/bundles --coredumps true -s radosgw.service`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "bundle_id",
				Aliases:  []string{"b"},
				Required: true,
				Usage:    "Bundle id, used verbatim in the archive filename",
			},
			&cli.StringFlag{
				Name:    "target",
				Aliases: []string{"t"},
				Value:   DefaultTargetPath,
				Usage:   "Output base directory for the generated archive",
			},
			&cli.StringFlag{
				Name:    "cluster_conf",
				Aliases: []string{"c"},
				Value:   DefaultClusterConfURI,
				Usage:   "URI of the cluster configuration store",
			},
			&cli.StringSliceFlag{
				Name:    "services",
				Aliases: []string{"s"},
				Usage:   "Target service names to capture state for (can be repeated)",
			},
			&cli.StringFlag{
				Name:    "duration",
				Aliases: []string{"d"},
				Value:   DefaultLogWindow,
				Usage:   "Log capture window as an ISO-8601 duration, e.g. P5D",
			},
			&cli.StringFlag{
				Name:  "size_limit",
				Value: DefaultSizeLimit,
				Usage: "Per-node bundle size cap, e.g. 500MB",
			},
			&cli.StringFlag{
				Name:  "binlogs",
				Value: "false",
				Usage: "Include binary logs: 'true' or 'false'",
			},
			&cli.StringFlag{
				Name:  "coredumps",
				Value: "false",
				Usage: "Include crash dumps: 'true' or 'false'",
			},
			&cli.StringFlag{
				Name:  "stacktrace",
				Value: "false",
				Usage: "Include stack traces: 'true' or 'false'",
			},
			&cli.StringFlag{
				Name:  "modules",
				Usage: "Free-text list of modules to collect for",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the run result to this file instead of stdout",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(serializer.FormatYAML),
				Usage:   fmt.Sprintf("Result format: %s", strings.Join(serializer.SupportedFormats(), ", ")),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("RGWSB_LOG_LEVEL"),
				Usage:   "Log level (debug, info, warn, error)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseGenerateCmdOptions(cmd)
			if err != nil {
				return err
			}

			logging.SetDefaultStructuredLoggerWithLevel(name, version, opts.logLevel)
			slog.Debug("starting", "name", name, "version", version, "commit", commit, "date", date)

			runCtx, cancel := context.WithTimeout(ctx, defaults.GenerateTimeout)
			defer cancel()

			gen := bundle.New(bundle.WithVersion(version))
			out, err := gen.Generate(runCtx, &bundle.Request{
				BundleID:       opts.bundleID,
				TargetPath:     opts.targetPath,
				ClusterConfURI: opts.confURI,
				Coredumps:      opts.coredumps,
				Services:       opts.services,
				Window:         opts.window,
				SizeLimit:      opts.sizeLimit,
				Binlogs:        opts.binlogs,
				Stacktrace:     opts.stacktrace,
				Modules:        opts.modules,
			})
			if err != nil {
				slog.Error("bundle generation failed", "error", err)
				return err
			}

			w := serializer.NewFileWriterOrStdout(opts.format, opts.output)
			defer func() {
				if cerr := w.Close(); cerr != nil {
					slog.Error("failed to close result writer", "error", cerr)
				}
			}()
			return w.Serialize(out)
		},
	}
}
