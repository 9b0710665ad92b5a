package main

import (
	"os"

	"github.com/Seagate/cortx-rgw-support-bundle/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
