// Command canonlab computes symmetry classes and canonical certificates of
// molecules and graphs, and keeps a catalog of seen structures.
//
//	canonlab canon benzene.mol
//	canonlab orbits --output json graphs.yaml
//	canonlab catalog add --catalog ./db library.sdf.gz
//	canonlab catalog lookup --catalog ./db query.mol
//	canonlab fixture --file petersen.yaml.gz petersen
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "canonlab:", err)
		stop()
		os.Exit(1)
	}
}
