package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/arcanaland/mtgdc/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
