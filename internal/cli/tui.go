package cli

import (
	"github.com/spf13/cobra"

	"rodrierr/internal/dispatch"
	"rodrierr/internal/suggest"
	"rodrierr/internal/ui"
	"rodrierr/internal/widget"
)

func tuiCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Search from the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath, toLogFile)
			if err != nil {
				return err
			}
			defer a.Close()

			mgr, err := a.openHistory()
			if err != nil {
				return err
			}

			d := dispatch.New(mgr, newOpener(),
				dispatch.WithBaseURL(a.cfg.Search.BaseURL),
				dispatch.WithBus(a.bus),
				dispatch.WithLogger(a.logger),
			)
			w := widget.New(suggest.NewEngine(nil, 0), mgr, d, a.bus)

			a.logger.Info("starting terminal shell", "backend", a.cfg.History.Backend)
			return runTUI(ui.NewModel(w, a.logger), a.bus)
		},
	}
}
