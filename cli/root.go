package cli

import (
	"context"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/bittrex/constants"
	"github.com/lukehollenback/bittrex/exchange/bittrex"
	"github.com/lukehollenback/bittrex/logger"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func init() {
	// NOTE ~> Print decimals as bare JSON numbers so output mirrors the exchange's own payloads.
	decimal.MarshalJSONWithoutQuotes = true
}

//
// app carries the state shared by every command of a single invocation.
//
type app struct {
	cfg    Config
	logger *logrus.Logger
	client *bittrex.Client
	colors aurora.Aurora
}

//
// NewRootCommand builds the full command tree. Each call returns an independent tree.
//
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Signed requests against the Bittrex REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags(), cmd.ErrOrStderr())
		},
	}

	registerFlags(root.PersistentFlags())

	root.AddCommand(
		a.operationsCmd(),
		a.callCmd(),
		a.marketsCmd(),
		a.currenciesCmd(),
		a.summariesCmd(),
		a.tickerCmd(),
		a.orderBookCmd(),
		a.historyCmd(),
		a.balancesCmd(),
		a.balanceCmd(),
		a.openOrdersCmd(),
		a.orderCmd(),
		a.ticksCmd(),
		a.latestTickCmd(),
	)

	return root
}

//
// Execute runs the CLI with the process arguments.
//
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

//
// setup resolves configuration and builds the logger and client before any command runs.
//
func (a *app) setup(flags *pflag.FlagSet, stderr io.Writer) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.loggerConfig(), stderr)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = log
	a.colors = aurora.NewAurora(!cfg.NoColor)
	a.client = bittrex.NewClient(
		cfg.APIKey,
		cfg.APISecret,
		bittrex.WithHost(cfg.Host),
		bittrex.WithLogger(log.WithField("exchange", "bittrex")),
	)

	log.WithFields(logrus.Fields{
		"host":          cfg.Host,
		"authenticated": cfg.APIKey != "",
	}).Debug("Client ready.")

	return nil
}

//
// context derives the per-command context, bounded by the configured timeout.
//
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if a.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, a.cfg.Timeout)
}
