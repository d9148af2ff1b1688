package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-library-keeper/internal/cli"
	"github.com/MKhiriev/go-library-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	err := cli.Execute(ctx, build, os.Args[1:])
	stop()
	if err != nil {
		os.Exit(1)
	}
}
