package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/finacc/internal/core/domain"
	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/dto"
	"github.com/SscSPs/finacc/internal/utils"
	"github.com/SscSPs/finacc/pkg/database"
	"github.com/spf13/cobra"
)

var (
	flagReportOrg         int64
	flagReportFrom        string
	flagReportTo          string
	flagReportGranularity string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print financial reports for an organization",
}

var reportPnLCmd = &cobra.Command{
	Use:   "pnl",
	Short: "Print the accrual-basis profit and loss report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, func(svc portssvc.ReportingService, req domain.ReportRequest) (domain.ReportTable, error) {
			r, err := svc.ProfitAndLoss(cmd.Context(), req)
			if err != nil {
				return domain.ReportTable{}, err
			}
			return r.Table(), nil
		})
	},
}

var reportCashFlowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Print the cash-basis cash flow report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, func(svc portssvc.ReportingService, req domain.ReportRequest) (domain.ReportTable, error) {
			r, err := svc.CashFlow(cmd.Context(), req)
			if err != nil {
				return domain.ReportTable{}, err
			}
			return r.Table(), nil
		})
	},
}

func init() {
	now := time.Now().UTC()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	reportCmd.PersistentFlags().Int64Var(&flagReportOrg, "org", 0, "Organization ID")
	reportCmd.PersistentFlags().StringVar(&flagReportFrom, "from", dto.FormatDate(yearStart), "Start date (YYYY-MM-DD)")
	reportCmd.PersistentFlags().StringVar(&flagReportTo, "to", dto.FormatDate(now), "End date (YYYY-MM-DD)")
	reportCmd.PersistentFlags().StringVar(&flagReportGranularity, "granularity", "month", "month, quarter, half or year")
	_ = reportCmd.MarkPersistentFlagRequired("org")

	reportCmd.AddCommand(reportPnLCmd, reportCashFlowCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, build func(svc portssvc.ReportingService, req domain.ReportRequest) (domain.ReportTable, error)) error {
	cfg, logger, err := stderrRuntime()
	if err != nil {
		return err
	}

	from, err := dto.ParseDate(flagReportFrom)
	if err != nil {
		return err
	}
	to, err := dto.ParseDate(flagReportTo)
	if err != nil {
		return err
	}

	dbPool, container, err := openServices(cmd.Context(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		return err
	}
	defer database.ClosePgxPool(dbPool, logger)

	table, err := build(container.Reporting, domain.ReportRequest{
		OrganizationID: flagReportOrg,
		Granularity:    domain.Granularity(flagReportGranularity),
		From:           from,
		To:             to,
	})
	if err != nil {
		return err
	}
	return printReportTable(cmd.OutOrStdout(), table)
}

// printReportTable writes one row per metric and one column per period.
func printReportTable(out io.Writer, table domain.ReportTable) error {
	fmt.Fprintln(out, table.Title)
	fmt.Fprintln(out, strings.Repeat("=", len(table.Title)))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "\t")
	for _, p := range table.Periods {
		fmt.Fprintf(w, "%s\t", p)
	}
	fmt.Fprintln(w)
	for _, row := range table.Rows {
		fmt.Fprintf(w, "%s\t", row.Label)
		for _, v := range row.Values {
			fmt.Fprintf(w, "%s\t", utils.FormatMoney(v))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
