package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"yoho/internal/cli"
	"yoho/internal/errcodes"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(errcodes.ExitCode(err))
	}
}
