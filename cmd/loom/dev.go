package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/loomui/loom/cmd/loom/internal/config"
	"github.com/loomui/loom/cmd/loom/internal/ui"
	"github.com/loomui/loom/internal/devserver"
)

func newDevCommand() *cobra.Command {
	var port int
	var host string
	var dir string
	var tui bool

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the component gallery dev server",
		Long:  `Serves the gallery directory with file watching and live reload.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(host, port, dir, tui)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from loom.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind (default from loom.yaml)")
	cmd.Flags().StringVar(&dir, "dir", "", "Gallery directory to serve")
	cmd.Flags().BoolVar(&tui, "tui", false, "Show the interactive status view")

	return cmd
}

func runDev(host string, port int, dir string, tui bool) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "loom"})

	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("load %s: %w", config.FileName, err)
	}
	// CLI flags take precedence over loom.yaml.
	if host != "" {
		cfg.Dev.Host = host
	}
	if port != 0 {
		cfg.Dev.Port = port
	}
	if dir != "" {
		cfg.Dev.Dir = dir
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server := devserver.New(cfg.Dev.Dir, logger)

	// The program must exist before the watcher goroutine that sends to it
	// starts.
	var program *tea.Program
	if tui {
		addr := net.JoinHostPort(cfg.Dev.Host, fmt.Sprint(cfg.Dev.Port))
		program = tea.NewProgram(ui.New(addr))
	}
	notify := func(paths []string) {
		reason := fmt.Sprintf("%d file(s) changed", len(paths))
		server.NotifyReload(reason)
		if program != nil {
			program.Send(ui.ReloadMsg{Reason: reason, Time: time.Now()})
			program.Send(ui.ClientsMsg(server.ClientCount()))
		}
	}

	watcher, err := devserver.NewWatcher(cfg.Dev.Dir,
		time.Duration(cfg.Dev.DebounceMS)*time.Millisecond, notify)
	if err != nil {
		return fmt.Errorf("watch %s: %w", cfg.Dev.Dir, err)
	}

	errc := make(chan error, 2)
	go func() { errc <- watcher.Run(ctx) }()
	go func() { errc <- server.ListenAndServe(ctx, cfg.Dev.Host, cfg.Dev.Port) }()

	if program != nil {
		if _, err := program.Run(); err != nil {
			cancel()
			return err
		}
		cancel()
	}

	err = <-errc
	if ctx.Err() != nil {
		return nil
	}
	return err
}
