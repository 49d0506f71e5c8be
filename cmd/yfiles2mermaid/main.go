package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/yfiles2mermaid/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.New(os.Stdout, os.Stderr, cli.LogInfo).Execute(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}
