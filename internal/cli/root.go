// Package cli wires configuration, logging and the shells into the rodrierr
// command.
package cli

import (
	"context"
	"net"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rodrierr/internal/browser"
	"rodrierr/internal/eventbus"
	"rodrierr/internal/server"
	"rodrierr/internal/ui"
)

// Execute runs the root command.
func Execute() error {
	return NewRoot().Execute()
}

// Replaced in tests.
var (
	newOpener = func() browser.Opener { return browser.NewSystem() }

	runServer = func(ctx context.Context, s *server.Server, ln net.Listener) error {
		return s.Serve(ctx, ln)
	}

	runTUI = func(m *ui.Model, bus eventbus.EventBus) error {
		p := tea.NewProgram(m, tea.WithAltScreen())
		m.SetProgram(p)
		defer forwardEvents(bus, p)()
		_, err := p.Run()
		return err
	}
)

// NewRoot builds the command tree. Without a subcommand it serves the page.
func NewRoot() *cobra.Command {
	var configPath string
	rootServe := &serveOptions{}

	root := &cobra.Command{
		Use:          "rodrierr",
		Short:        "Local search page with suggestions and history",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath, rootServe)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (.toml, .yaml or .yml)")
	addServeFlags(root, rootServe)

	root.AddCommand(
		serveCmd(&configPath),
		tuiCmd(&configPath),
		historyCmd(&configPath),
		configCmd(&configPath),
	)
	return root
}

// forwardEvents relays the events the terminal shell shows in its status
// line. The returned func unsubscribes.
func forwardEvents(bus eventbus.EventBus, p *tea.Program) func() {
	var unsubs []func()
	for _, t := range []eventbus.EventType{
		eventbus.EventSearchDispatched,
		eventbus.EventHistoryCleared,
		eventbus.EventError,
	} {
		unsubs = append(unsubs, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
