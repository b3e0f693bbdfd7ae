package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/lukehollenback/bittrex/cli"
)

func main() {
	//
	// Cancel in-flight requests if the operating system asks us to shut down.
	//
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)

		stop()
		os.Exit(1)
	}
}
