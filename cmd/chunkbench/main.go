// Command chunkbench measures the chunking variants over a sweep of input
// cardinalities and chunk sizes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		errorAndExit(err)
	}
}

func errorAndExit(err error) {
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}
	os.Exit(1)
}
