package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/tabebui/internal/service"
	"github.com/limbo/tabebui/pkg/cleanup"
)

func init() {
	service.InitValidator()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(loadApp).ExecuteContext(ctx)
	stop()
	if cleanupErr := cleanup.CleanUp(); cleanupErr != nil {
		fmt.Fprintln(os.Stderr, "cleanup error: "+cleanupErr.Error())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
