package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ltr-quiz/internal/cli"
)

func main() {
	if err := cli.LoadEnvFile(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	opts, err := cli.ParseOptions(os.Args[1:], os.Getenv)
	if cli.IsHelp(err) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, os.Stdin, os.Stdout, opts); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
