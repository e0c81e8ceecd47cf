package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"dental-lab/internal/app"
	"dental-lab/internal/config"
	"dental-lab/internal/domain/doctors"
	"dental-lab/internal/domain/patients"
	"dental-lab/internal/domain/practices"

	"github.com/spf13/cobra"
)

type statsReport struct {
	Doctors   doctors.Stats   `json:"doctors"`
	Practices practices.Stats `json:"practices"`
	Patients  patients.Stats  `json:"patients"`
}

func statsCmd(envFile *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Load every collection from the configured source and print its counters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("invalid format %q: must be text or json", format)
			}
			cfg, err := config.LoadFile(*envFile)
			if err != nil {
				return err
			}

			// los errores de fetch ya quedan en el log; el reporte sale igual
			log := newLogger(cfg, cmd.ErrOrStderr())
			a, err := app.New(app.Options{Config: cfg, Logger: log})
			if err != nil {
				return err
			}
			defer closeApp(a, log)
			_ = a.Sync(cmd.Context())

			rep := statsReport{
				Doctors:   a.Doctors.Stats(),
				Practices: a.Practices.Stats(),
				Patients:  a.Patients.Stats(),
			}
			return writeReport(cmd.OutOrStdout(), format, rep)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json)")
	return cmd
}

func writeReport(w io.Writer, format string, rep statsReport) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Fprintf(w, "doctors:   total=%d active=%d patients=%d recent_work=%d\n",
		rep.Doctors.TotalDoctors, rep.Doctors.ActiveDoctors, rep.Doctors.TotalPatients, rep.Doctors.RecentWork)
	fmt.Fprintf(w, "practices: total=%d active=%d doctors=%d recent_work=%d\n",
		rep.Practices.TotalPractices, rep.Practices.ActivePractices, rep.Practices.TotalDoctors, rep.Practices.RecentWork)
	fmt.Fprintf(w, "patients:  total=%d cases=%d\n", rep.Patients.TotalPatients, rep.Patients.TotalCases)

	statuses := make([]string, 0, len(rep.Patients.CasesByStatus))
	for s := range rep.Patients.CasesByStatus {
		statuses = append(statuses, string(s))
	}
	sort.Strings(statuses)
	for _, s := range statuses {
		fmt.Fprintf(w, "  %-12s %d\n", s, rep.Patients.CasesByStatus[patients.CaseStatus(s)])
	}
	return nil
}
