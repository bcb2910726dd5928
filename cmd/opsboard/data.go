package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"opsboard/internal/board"
	"opsboard/internal/csvio"
	"opsboard/internal/domain"
	"opsboard/internal/seed"
)

var (
	seedIfEmpty   bool
	importCompany string
	exportOutput  string
	logLimit      int
	logEntity     string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the board with the sample data",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import workers or equipment from CSV",
}

var importWorkersCmd = &cobra.Command{
	Use:   "workers FILE",
	Short: "Import workers (name, company, skills, wage, ...)",
	Long: `Adds one worker per row. Unknown company names are created up to the
company limit; rows past it land on the first company. Use "-" for stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runImportWorkers,
}

var importEquipmentCmd = &cobra.Command{
	Use:   "equipment FILE",
	Short: "Import equipment (asset number, type, make, model, ...)",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportEquipment,
}

var exportCmd = &cobra.Command{
	Use:       "export TABLE",
	Short:     "Export workers, equipment, projects or assignments as CSV",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"workers", "equipment", "projects", "assignments"},
	RunE:      runExport,
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Print recent audit entries, newest first",
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	seedCmd.Flags().BoolVar(&seedIfEmpty, "if-empty", false, "only seed when no projects exist")
	importWorkersCmd.Flags().StringVar(&importCompany, "company", "", "company id for rows without a company")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "output file, - for stdout")
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "number of entries")
	logCmd.Flags().StringVar(&logEntity, "entity", "", "only entries for worker, equip, project, timesheet or company")

	importCmd.AddCommand(importWorkersCmd, importEquipmentCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	b, err := openBoard(ctx)
	if err != nil {
		return err
	}
	if seedIfEmpty {
		seeded, err := seed.IfEmpty(ctx, b)
		if err != nil {
			return err
		}
		if !seeded {
			fmt.Fprintln(cmd.OutOrStdout(), "board already has projects, nothing to do")
			return nil
		}
	} else if err := seed.Seed(ctx, b); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d projects, %d workers, %d equipment\n",
		len(b.Projects()), len(b.Workers()), len(b.EquipmentList()))
	return nil
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}

func printReport(w io.Writer, what string, rep csvio.Report) {
	fmt.Fprintf(w, "%s: %d rows, %d imported, %d skipped", what, rep.Rows, rep.Imported, rep.Skipped)
	if rep.CompaniesCreated > 0 || rep.Blocked > 0 {
		fmt.Fprintf(w, ", %d companies created, %d blocked by limit", rep.CompaniesCreated, rep.Blocked)
	}
	fmt.Fprintln(w)
}

func runImportWorkers(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	in, err := openInput(cmd, args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	b, err := openBoard(ctx)
	if err != nil {
		return err
	}
	rep, err := csvio.ImportWorkers(ctx, b, in, csvio.WorkerOptions{DefaultCompanyID: importCompany})
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), "workers", rep)
	return nil
}

func runImportEquipment(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	in, err := openInput(cmd, args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	b, err := openBoard(ctx)
	if err != nil {
		return err
	}
	rep, err := csvio.ImportEquipment(ctx, b, in)
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), "equipment", rep)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	table, err := csvio.ParseTable(args[0])
	if err != nil {
		return err
	}
	b, err := openBoard(commandContext(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if exportOutput != "-" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return csvio.Export(out, b.Snapshot(), table)
}

func runLog(cmd *cobra.Command, args []string) error {
	b, err := openBoard(commandContext(cmd))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, l := range b.Logs(board.LogFilter{Entity: domain.EntityKind(logEntity), Limit: logLimit}) {
		fmt.Fprintf(out, "%s  %-10s %-9s %-8s %s %s\n",
			l.TS.Local().Format(time.DateTime), l.Actor, l.Entity, l.Action, l.EntityID, l.Details)
	}
	return nil
}
