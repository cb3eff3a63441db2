package main

import (
	"fmt"
	"os"

	"github.com/unidubna/portal/core"
	"github.com/unidubna/portal/core/user"
	"github.com/unidubna/portal/storage/filestore"
)

// Permission tags have no in-app UI; this CLI is the only writer besides a
// text editor on the user table itself.
func main() {
	conf := core.NewConfig()

	store, err := filestore.Open(conf.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening data dir: %v\n", err)
		os.Exit(1)
	}

	cli := commandLine{usrSvc: user.NewService(store.Users, nil, conf)}
	if err = cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}
}
