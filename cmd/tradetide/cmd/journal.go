package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tradetide/tradetide/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query execution journal data",
	Long: `Query and display execution records from the SQLite journal.

Subcommands:
  exec     - Get details of a specific execution by ID
  identity - List all executions for an identity
  today    - List executions applied today
  day      - List executions applied on a specific day

Examples:
  tradetide journal exec 01J9ZX...
  tradetide journal identity PAPER-001
  tradetide journal today
  tradetide journal day 2026-08-30`,
}

var journalExecCmd = &cobra.Command{
	Use:   "exec <exec-id>",
	Short: "Get details of a specific execution",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalExec,
}

var journalIdentityCmd = &cobra.Command{
	Use:   "identity <identity>",
	Short: "List all executions for an identity",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalIdentity,
}

var journalTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List executions applied today",
	Args:  cobra.NoArgs,
	RunE:  runJournalToday,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List executions applied on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalExecCmd)
	journalCmd.AddCommand(journalIdentityCmd)
	journalCmd.AddCommand(journalTodayCmd)
	journalCmd.AddCommand(journalDayCmd)

	defaultDB := "./tradetide.sqlite"
	if v := os.Getenv("TRADETIDE_DB"); v != "" {
		defaultDB = v
	}
	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", defaultDB, "path to SQLite journal DB")
}

func runJournalExec(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	rec, err := j.GetExecution(args[0])
	if err != nil {
		return fmt.Errorf("get execution: %w", err)
	}

	fmt.Println(journal.FormatExecutionOrg(rec))
	return nil
}

func runJournalIdentity(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ListExecutionsByIdentity(args[0])
	if err != nil {
		return fmt.Errorf("query executions: %w", err)
	}

	fmt.Println(journal.FormatExecutionsOrg(recs))
	return nil
}

func runJournalToday(cmd *cobra.Command, args []string) error {
	loc := time.Local
	return listJournalDay(time.Now().In(loc).Format("2006-01-02"))
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	return listJournalDay(args[0])
}

func listJournalDay(day string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	start, end, err := dayBounds(time.Local, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	recs, err := j.ListExecutionsBetween(start, end)
	if err != nil {
		return fmt.Errorf("query executions: %w", err)
	}

	fmt.Println(journal.FormatExecutionsOrg(recs))
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)
	return start, end, nil
}
