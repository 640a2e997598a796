package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"caregiver-shifts-backend/internal/auth"
	"caregiver-shifts-backend/internal/config"
	"caregiver-shifts-backend/internal/database"
	"caregiver-shifts-backend/internal/logger"
	"caregiver-shifts-backend/internal/repository"
	"caregiver-shifts-backend/internal/seed"
	"caregiver-shifts-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	gormlogger "gorm.io/gorm/logger"
)

// app bundles what the commands need once the store is open
type app struct {
	shiftRepo     repository.ShiftRepositoryInterface
	caregiverRepo repository.CaregiverRepositoryInterface
	shifts        service.ShiftServiceInterface
	reports       service.ReportServiceInterface
	actor         *auth.Principal
}

type appOpener func(migrate bool) (*app, error)

func openApp(migrate bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, &database.Options{
		LogLevel:    gormlogger.Silent,
		SkipMigrate: !migrate,
	})
	if err != nil {
		return nil, err
	}

	shiftRepo := repository.NewShiftRepository(db, cfg.StoreTimeout())
	caregiverRepo := repository.NewCaregiverRepository(db, cfg.StoreTimeout())
	directory, err := service.NewCaregiverDirectory(cfg, caregiverRepo)
	if err != nil {
		return nil, err
	}
	authorizer := auth.NewAuthorizer()

	return &app{
		shiftRepo:     shiftRepo,
		caregiverRepo: caregiverRepo,
		shifts:        service.NewShiftService(shiftRepo, directory, authorizer, validator.New(), cfg.Location()),
		reports:       service.NewReportService(shiftRepo, authorizer),
		actor:         &auth.Principal{Subject: "shiftctl", Name: "shiftctl", Role: auth.RoleSupervisor},
	}, nil
}

func newRootCmd(open appOpener) *cobra.Command {
	root := &cobra.Command{
		Use:           "shiftctl",
		Short:         "Operate the caregiver shift store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(open), newReportCmd(open), newTimelineCmd(open), newSeedCmd(open))
	return root
}

func newMigrateCmd(open appOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the shift tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := open(true); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func newReportCmd(open appOpener) *cobra.Command {
	report := &cobra.Command{
		Use:   "report",
		Short: "Hour reports",
	}

	var weekStart, patientID, out string
	hours := &cobra.Command{
		Use:   "hours",
		Short: "Weekly scheduled and actual hours per caregiver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := service.ParseDate("week-start", weekStart)
			if err != nil {
				return err
			}
			a, err := open(false)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				if err := a.reports.ExportHours(ctx, a.actor, day, patientID, f); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", out)
				return nil
			}

			rep, err := a.reports.WeeklyHours(ctx, a.actor, day, patientID)
			if err != nil {
				return err
			}
			return printHours(cmd.OutOrStdout(), rep)
		},
	}
	hours.Flags().StringVar(&weekStart, "week-start", "", "any date in the week (YYYY-MM-DD)")
	hours.Flags().StringVar(&patientID, "patient", "", "restrict to one patient")
	hours.Flags().StringVar(&out, "out", "", "write an xlsx workbook to this file")
	_ = hours.MarkFlagRequired("week-start")

	report.AddCommand(hours)
	return report
}

func printHours(w io.Writer, rep *service.HoursReport) error {
	fmt.Fprintf(w, "Week %s to %s\n", rep.WeekStart, rep.WeekEnd)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CAREGIVER\tNAME\tSHIFTS\tSCHEDULED\tACTUAL\tVARIANCE")
	for _, r := range rep.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\t%.1f\t%+.1f\n", r.CaregiverID, r.CaregiverName, r.ShiftCount, r.ScheduledHours, r.ActualHours, r.Variance)
	}
	fmt.Fprintf(tw, "\tTotal\t\t%.1f\t%.1f\t\n", rep.ScheduledTotal, rep.ActualTotal)
	return tw.Flush()
}

func newTimelineCmd(open appOpener) *cobra.Command {
	var patientID, from, to string
	var withCancelled bool
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print a patient's day views as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := service.ParseDate("from", from)
			if err != nil {
				return err
			}
			last := first
			if to != "" {
				if last, err = service.ParseDate("to", to); err != nil {
					return err
				}
			}
			a, err := open(false)
			if err != nil {
				return err
			}

			tl, err := a.shifts.Timeline(cmd.Context(), a.actor, patientID, first, last, withCancelled)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tl)
		},
	}
	cmd.Flags().StringVar(&patientID, "patient", "", "patient id")
	cmd.Flags().StringVar(&from, "from", "", "first date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last date (YYYY-MM-DD), defaults to --from")
	cmd.Flags().BoolVar(&withCancelled, "include-cancelled", false, "show cancelled shifts")
	_ = cmd.MarkFlagRequired("patient")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func newSeedCmd(open appOpener) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load caregivers and shifts from YAML files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := seed.Load(dir)
			if err != nil {
				return err
			}
			a, err := open(true)
			if err != nil {
				return err
			}
			res, err := seed.NewLoader(a.caregiverRepo, a.shiftRepo, a.shifts, a.actor.Subject).Apply(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "caregivers upserted: %d, shifts created: %d, skipped: %d\n",
				res.CaregiversUpserted, res.ShiftsCreated, res.ShiftsSkipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "data", "scripts/data", "directory holding caregivers and shifts YAML files")
	return cmd
}
