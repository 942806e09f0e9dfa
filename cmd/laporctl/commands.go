package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"laporkampus_backend/internals/configs"
	personnelService "laporkampus_backend/internals/features/personnel/service"
	exportService "laporkampus_backend/internals/features/reports/exports/service"
	report "laporkampus_backend/internals/features/reports/laporan/model"
	warningService "laporkampus_backend/internals/features/reports/warnings/service"
)

// ReportSource bagian klien Laravel yang dipakai CLI.
type ReportSource interface {
	GetReports(ctx context.Context, token string) ([]report.Report, error)
	GetReport(ctx context.Context, token, id string) (report.Report, error)
}

var exportOut string
var exportFormat string
var matchAll bool

var warningsCmd = &cobra.Command{
	Use:   "warnings",
	Short: "Tampilkan laporan yang terlambat ditangani",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()
		policy, err := configs.LoadPolicy(policyFile)
		if err != nil {
			return err
		}
		return runWarnings(ctx, newClient(), policy, time.Now(), cmd.OutOrStdout())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Tulis laporan ke file XLSX atau CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()
		policy, err := configs.LoadPolicy(policyFile)
		if err != nil {
			return err
		}
		path, err := runExport(ctx, newClient(), policy, exportFormat, exportOut, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ ditulis ke %s\n", path)
		return nil
	},
}

var matchCmd = &cobra.Command{
	Use:   "match [report-id]",
	Short: "Cocokkan laporan dengan petugas (atau --all untuk peringkat)",
	Args: func(cmd *cobra.Command, args []string) error {
		if matchAll {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()
		raw, err := configs.RosterYAML(rosterFile)
		if err != nil {
			return err
		}
		roster, err := personnelService.LoadRoster(raw)
		if err != nil {
			return err
		}
		m := personnelService.NewMatcher(roster)
		if matchAll {
			return runRanking(ctx, newClient(), m, cmd.OutOrStdout())
		}
		return runMatch(ctx, newClient(), m, args[0], cmd.OutOrStdout())
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "File tujuan (default: laporan_<waktu>.<format>)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "xlsx", "xlsx atau csv")
	matchCmd.Flags().BoolVar(&matchAll, "all", false, "Peringkat petugas untuk semua laporan")
}

func runWarnings(ctx context.Context, src ReportSource, policy configs.Policy, now time.Time, w io.Writer) error {
	reports, err := src.GetReports(ctx, token)
	if err != nil {
		return err
	}
	ws := warningService.NewDeriver(policy.Warning).Derive(reports, now)
	sum := warningService.Summarize(ws)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRIORITAS\tHARI\tSTATUS\tJUDUL")
	for _, x := range ws {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", x.ReportID, x.Priority, x.DaysOverdue, x.Status, x.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\nTotal %d (critical %d, high %d, medium %d)\n", sum.Total, sum.Critical, sum.High, sum.Medium)
	return err
}

func runExport(ctx context.Context, src ReportSource, policy configs.Policy, format, out string, now time.Time) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "xlsx" && format != "csv" {
		return "", fmt.Errorf("format tidak dikenal: %q", format)
	}
	reports, err := src.GetReports(ctx, token)
	if err != nil {
		return "", err
	}

	var data []byte
	if format == "csv" {
		data, err = exportService.BuildCSV(reports)
	} else {
		data, err = exportService.BuildXLSX(reports, warningService.NewDeriver(policy.Warning).Derive(reports, now))
	}
	if err != nil {
		return "", err
	}

	if out == "" {
		out = fmt.Sprintf("laporan_%s.%s", now.Format("20060102_150405"), format)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	return out, os.WriteFile(out, data, 0o644)
}

func runMatch(ctx context.Context, src ReportSource, m *personnelService.Matcher, id string, w io.Writer) error {
	r, err := src.GetReport(ctx, token, id)
	if err != nil {
		return err
	}
	res := m.Match(r)
	fmt.Fprintf(w, "Laporan #%s: %s\n", r.ID, r.Title)
	fmt.Fprintf(w, "Petugas : %s (%s)\n", res.Personnel.Name, res.Personnel.Position)
	if res.Fallback {
		fmt.Fprintln(w, "Catatan : tidak ada kecocokan jelas, pakai petugas cadangan")
	} else {
		fmt.Fprintf(w, "Skor    : %d kata kunci\n", res.Score)
	}
	if link := personnelService.WhatsAppLink(res.Personnel, r); link != "" {
		fmt.Fprintf(w, "WhatsApp: %s\n", link)
	}
	return nil
}

func runRanking(ctx context.Context, src ReportSource, m *personnelService.Matcher, w io.Writer) error {
	reports, err := src.GetReports(ctx, token)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PETUGAS\tJABATAN\tLAPORAN")
	for _, e := range m.Ranking(reports) {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", e.Name, e.Position, e.Count)
	}
	return tw.Flush()
}
