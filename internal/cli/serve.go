package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"rodrierr/internal/browser"
	"rodrierr/internal/server"
)

type serveOptions struct {
	addr      string
	noBrowser bool
}

func addServeFlags(cmd *cobra.Command, o *serveOptions) {
	cmd.Flags().StringVar(&o.addr, "addr", "", "HTTP bind address (default from config, 127.0.0.1:5000)")
	cmd.Flags().BoolVar(&o.noBrowser, "no-browser", false, "do not open the page in a browser on start")
}

func serveCmd(configPath *string) *cobra.Command {
	o := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search page and open it in the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, *configPath, o)
		},
	}
	addServeFlags(cmd, o)
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, o *serveOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(configPath, toWriter(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	defer a.Close()

	if o.addr != "" {
		a.cfg.Server.Addr = o.addr
	}

	srv, err := server.New(a.cfg, a.logger, a.bus)
	if err != nil {
		return err
	}

	ln, err := srv.Listen()
	if err != nil {
		return err
	}
	defer ln.Close()

	url := srv.URL()
	fmt.Fprintf(cmd.OutOrStdout(), "Rodrierr listening on %s\n", url)

	if a.cfg.Browser.OpenOnStart && !o.noBrowser {
		delay := time.Duration(a.cfg.Browser.DelayMS) * time.Millisecond
		browser.OpenAfter(ctx, newOpener(), delay, url, a.logger)
	}

	return runServer(ctx, srv, ln)
}
