package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/urfave/cli"

	cmdCommon "github.com/cookpit/cookpit/cmd/common"
	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/internal/api"
	"github.com/cookpit/cookpit/internal/host"
	"github.com/cookpit/cookpit/internal/server"
	"github.com/cookpit/cookpit/internal/session"
	"github.com/cookpit/cookpit/pkg/cookiekit"
	"github.com/cookpit/cookpit/pkg/logger"
)

func daemon(ctx *cli.Context) error {
	if err := RunDaemon(); err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "daemon", "run", err)
	}
	return nil
}

// RunDaemon wires the daemon together and serves until interrupted: browser
// host, change watcher, session registry, api and the socket server.
func RunDaemon() error {
	stdlog := log.Default()
	l := logger.NewStandardLogger(stdlog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := host.New(host.Config{
		ControlURL: os.Getenv(common.CDPURLEnv),
		Log:        l,
	})
	if err := h.Connect(); err != nil {
		return err
	}
	defer h.Close()

	watcher := host.NewPollWatcher(h.Snapshot, host.DefaultPollInterval, l)
	go watcher.Start(ctx)
	defer watcher.Close()

	registry := session.NewRegistry(l)
	go registry.Run(ctx, watcher)

	collector := cookiekit.NewCollector(h, stdlog)
	a, err := api.NewApi(l, h, registry, collector)
	if err != nil {
		return err
	}
	defer a.Close()

	ws := server.NewWebServer(l, a, registry, &server.WSConfig{
		Secret: os.Getenv(common.WSSecretEnv),
		Port:   envPort(common.WSPortEnv, common.DefaultWSPort),
	})

	serv := server.NewServer(l, registry, ws, envPort(common.PortEnv, common.DefaultPort))
	a.RegisterHandlers(serv)
	return serv.Start(ctx)
}

func envPort(env string, def int) int {
	if port := os.Getenv(env); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p >= 1 && p <= 65535 {
			return p
		}
	}
	return def
}
