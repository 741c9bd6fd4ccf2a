package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tradetide/tradetide/config"
	"github.com/tradetide/tradetide/journal"
	"github.com/tradetide/tradetide/ledger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scripted trading session from a config file",
	Long: `Run a paper-trading session using settings from a configuration file.

The config file specifies the account, the fee rate, the journal backend and
the sequence of trades to execute. Rejected trades are reported and skipped;
the session continues with the next step.

Example:
  tradetide run -f session.yaml`,
	RunE: runRun,
}

var runConfigPath string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(runConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logrus.New()
	if cfg.Logging.Level != "" {
		level, err := logrus.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		log.SetLevel(level)
	}
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var j journal.Journal
	if cfg.Journal.Type == "csv" {
		j, err = journal.NewCSV(cfg.Journal.ExecutionsFile, cfg.Journal.SnapshotsFile)
	} else {
		j, err = journal.NewSQLite(cfg.Journal.DBPath)
	}
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	accounts := ledger.NewAccountStore(ledger.AccountStoreParams{
		InitialBalance: cfg.Account.InitialBalance,
	})
	positions := ledger.NewPositionLedger()
	engine := ledger.NewEngine(accounts, positions, ledger.EngineParams{
		FeeBps:  cfg.Fees.Bps,
		Journal: j,
		Log:     log,
	})
	valuator := ledger.NewValuator(accounts, positions)

	identity := cfg.Account.Identity
	if err := engine.CreateAccount(identity); err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	fmt.Printf("Running session with config: %s\n", runConfigPath)
	fmt.Printf("  Account: %s (Balance: %d)\n", identity, cfg.Account.InitialBalance)
	fmt.Printf("  Journal: %s\n\n", cfg.Journal.Type)

	ctx := context.Background()
	applied, rejected := 0, 0
	for i, step := range cfg.Session.Trades {
		side, err := ledger.ParseSide(step.Side)
		if err != nil {
			return fmt.Errorf("session step %d: %w", i, err)
		}

		exec, err := engine.ExecuteTrade(ctx, identity, ledger.Trade{
			Symbol:   step.Symbol,
			Quantity: step.Quantity,
			Price:    step.Price,
			Side:     side,
		})
		if err != nil {
			// A categorical rejection is a session event, not a fault.
			if errors.Is(err, ledger.ErrInsufficientFunds) || errors.Is(err, ledger.ErrInsufficientPosition) {
				log.WithError(err).Warn("trade rejected")
				rejected++
				continue
			}
			return fmt.Errorf("session step %d: %w", i, err)
		}

		fmt.Printf("  [%d] %s %d %s @ %d  fee=%d", i+1, exec.Side, exec.Quantity, exec.Symbol, exec.Price, exec.Fee)
		if exec.Side == ledger.Sell {
			fmt.Printf("  realized=%d", exec.RealizedGain)
		}
		fmt.Println()
		applied++
	}

	portfolio, err := valuator.GetPortfolio(identity)
	if err != nil {
		return fmt.Errorf("portfolio: %w", err)
	}

	fmt.Printf("\nSession complete: %d applied, %d rejected\n\n", applied, rejected)
	fmt.Printf("Portfolio for %s:\n", identity)
	fmt.Printf("  Total Value:    %d\n", portfolio.TotalValue)
	fmt.Printf("  Realized Gains: %d\n", portfolio.RealizedGains)
	fmt.Printf("  Win Rate:       %d%%\n", portfolio.WinRate)
	fmt.Printf("  Trades:         %d\n", portfolio.TradeCount)
	fmt.Printf("  Total Fees:     %d\n", portfolio.TotalFees)

	for _, pos := range positions.Open(identity) {
		fmt.Printf("  Position:       %s x%d @ %d\n", pos.Symbol, pos.Quantity, pos.AvgPrice)
	}

	return nil
}
