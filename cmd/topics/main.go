package main

import (
	"log/slog"
	"os"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/app"
)

func main() {
	cfg, err := app.LoadProvisionerCfg()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	if err := app.NewProvisioner(cfg).Run(); err != nil {
		slog.Error("topic provisioning failed", "error", err)
		os.Exit(1)
	}
}
