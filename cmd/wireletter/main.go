package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/wireletter"
	"github.com/bft-labs/wireletter/internal/cliconfig"
	"github.com/bft-labs/wireletter/internal/watch"
	"github.com/bft-labs/wireletter/pkg/log"
)

const helpDescription = `
Turn wire-transfer requests into signed-ready bank instruction letters.

Each request is validated, laid out as a Spanish PDF letter with a bordered
transfer table, and emailed to the bank with an HTML summary.

Configuration is read from $HOME/.wireletter/config.toml, then WIRELETTER_*
environment variables, then flags.
`

var exampleUsage = strings.TrimSpace(`
  wireletter serve --listen :8080 --mail-from treasury@example.com --mail-to transfers@bank.example
  wireletter render request.yaml --out letter.pdf --watch
  wireletter send request.json --dry-run
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

type cli struct {
	cfg     cliconfig.Config
	cfgPath string
	logger  *log.ZerologLogger
}

func main() {
	c := &cli{cfg: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:               "wireletter",
		Short:             "Render and dispatch wire-transfer instruction letters",
		Long:              strings.TrimSpace(helpDescription),
		Example:           exampleUsage,
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:      true,
		PersistentPreRunE: c.load,
	}
	c.bindFlags(root.PersistentFlags())

	root.AddCommand(c.serveCmd(), c.renderCmd(), c.sendCmd())

	if err := root.Execute(); err != nil {
		logger := c.logger
		if logger == nil {
			logger = cliconfig.Logger("info")
		}
		logger.Error("wireletter", log.Err(err))
		os.Exit(1)
	}
}

func (c *cli) bindFlags(fs *pflag.FlagSet) {
	cfg := &c.cfg
	fs.StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.wireletter/config.toml)")
	fs.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "HTTP listen address for serve")
	fs.StringVar(&cfg.MailAPIURL, "mail-api-url", cfg.MailAPIURL, "mail provider base URL")
	fs.StringVar(&cfg.MailAPIKey, "mail-api-key", cfg.MailAPIKey, "mail provider API key")
	fs.StringVar(&cfg.MailFrom, "mail-from", cfg.MailFrom, "sender address")
	fs.StringSliceVar(&cfg.MailTo, "mail-to", cfg.MailTo, "bank recipient addresses")
	fs.BoolVar(&cfg.CcSubmitter, "cc-submitter", cfg.CcSubmitter, "copy the submitter on dispatched letters")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "log emails instead of sending them")
	fs.DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "mail provider HTTP timeout")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout for serve")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for amount formatting")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Letter.City, "city", cfg.Letter.City, "city printed on the date line")
	fs.StringVar(&cfg.Letter.Party.Name, "ordering-party", cfg.Letter.Party.Name, "ordering party name")
	fs.StringVar(&cfg.Letter.Party.DebitAccount, "debit-account", cfg.Letter.Party.DebitAccount, "account to debit")
}

// load layers the config file and environment under explicitly set flags.
func (c *cli) load(cmd *cobra.Command, _ []string) error {
	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&c.cfg, fc, changed); err != nil {
			return err
		}
	}
	if err := cliconfig.ApplyEnvConfig(&c.cfg, changed); err != nil {
		return err
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	c.logger = cliconfig.Logger(c.cfg.LogLevel)
	c.logger.Debug("configuration",
		log.String("listen", c.cfg.ListenAddr),
		log.String("mail_from", c.cfg.MailFrom),
		log.Strings("mail_to", c.cfg.MailTo),
		log.Bool("api_key_set", c.cfg.MailAPIKey != ""),
		log.Bool("dry_run", c.cfg.DryRun),
		log.String("locale", c.cfg.Locale),
	)
	return nil
}

func (c *cli) service() (*wireletter.Service, error) {
	cfg := c.cfg
	return wireletter.New(wireletter.Config{
		MailAPIURL:  cfg.MailAPIURL,
		MailAPIKey:  cfg.MailAPIKey,
		MailFrom:    cfg.MailFrom,
		MailTo:      cfg.MailTo,
		CcSubmitter: cfg.CcSubmitter,
		DryRun:      cfg.DryRun,
		HTTPTimeout: cfg.HTTPTimeout,
		Locale:      cfg.Locale,
		Letter:      cfg.Letter,
	}, wireletter.WithLogger(c.logger))
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Accept wire-transfer requests over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.cfg.ValidateMail(); err != nil {
				return err
			}
			svc, err := c.service()
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()
			return svc.Serve(ctx, c.cfg.ListenAddr, c.cfg.ShutdownTimeout)
		},
	}
}

func (c *cli) renderCmd() *cobra.Command {
	var out string
	var watchInput bool

	cmd := &cobra.Command{
		Use:   "render <request.json|request.yaml>",
		Short: "Render a request file to a PDF without sending it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if out == "" {
				out = strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf"
			}
			svc, err := c.service()
			if err != nil {
				return err
			}

			job := func(ctx context.Context) error {
				return c.renderFile(ctx, svc, input, out)
			}
			if !watchInput {
				return job(cmd.Context())
			}

			ctx, stop := signalContext()
			defer stop()
			return watch.New(input, job, watch.WithLogger(c.logger.With(log.String("input", input)))).Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PDF path (default: input name with .pdf)")
	cmd.Flags().BoolVarP(&watchInput, "watch", "w", false, "re-render whenever the input file changes")
	return cmd
}

func (c *cli) renderFile(ctx context.Context, svc *wireletter.Service, input, out string) error {
	record, err := cliconfig.LoadRecord(input)
	if err != nil {
		return err
	}
	doc, err := svc.Render(ctx, record)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, doc.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	c.logger.Info("letter rendered", log.String("out", out), log.Int("pages", doc.Pages))
	return nil
}

func (c *cli) sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <request.json|request.yaml>",
		Short: "Render a request file and email it to the bank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.cfg.ValidateMail(); err != nil {
				return err
			}
			record, err := cliconfig.LoadRecord(args[0])
			if err != nil {
				return err
			}
			svc, err := c.service()
			if err != nil {
				return err
			}
			receipt, err := svc.Submit(cmd.Context(), record)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent %s (%d page(s))\n", receipt.ReferenceID, receipt.Pages)
			return nil
		},
	}
}
