// riggerctl is a command-line companion for the Rigger API: it signs in,
// inspects the stored session, switches environments, and browses listings
// through the same client the apps use.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli, err := initializeCLI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "riggerctl: %v\n", err)
		os.Exit(1)
	}

	if err := cli.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "riggerctl: %v\n", err)
		os.Exit(1)
	}
}
