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
	"os"
	"os/signal"
	"syscall"

	"github.com/Seagate/cortx-rgw-support-bundle/pkg/errors"
)

const (
	name           = "rgwsb"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute parses os.Args and runs the bundle generation command. It
// returns the process exit code: 0 on success, 1 on operator interrupt
// or any other failure.
func Execute() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, aborting bundle generation...")
		cancel()
	}()

	if err := generateCmd().Run(ctx, os.Args); err != nil {
		if errors.CodeOf(err) == errors.ErrCodeInterrupted {
			fmt.Fprintln(os.Stderr, "Bundle generation was interrupted; partial data has been discarded.")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}
