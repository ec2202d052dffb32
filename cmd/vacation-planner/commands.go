package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/username/vacation-planner/internal/calendar"
	"github.com/username/vacation-planner/internal/server"
	"github.com/username/vacation-planner/internal/view"
	"github.com/username/vacation-planner/pkg/dateutil"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if a.cfg.Session.AutoLoginUserID != "" {
				if _, err := a.planner.Sessions().Login(a.cfg.Session.AutoLoginUserID); err != nil {
					return fmt.Errorf("auto-login failed: %w", err)
				}
			}

			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			srv := server.New(a.planner, addr, a.cfg.Server.GetShutdownTimeout(), logger)

			// Setup signal handling
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("Starting vacation planner", zap.String("addr", addr))
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	return cmd
}

func calendarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Show the monthly calendar of the user",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()
			if _, err := a.login(); err != nil {
				return err
			}

			month, err := a.planner.MonthOrToday(firstArg(args))
			if err != nil {
				return err
			}
			mv, err := a.planner.Month(month)
			if err != nil {
				return err
			}
			printMonth(cmd.OutOrStdout(), mv)
			return nil
		},
	}
}

func matrixCmd() *cobra.Command {
	var search string
	var favoritesOnly bool

	cmd := &cobra.Command{
		Use:   "matrix [YYYY-MM]",
		Short: "Show who is absent on which day of the month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()
			sess, err := a.login()
			if err != nil {
				return err
			}
			sess.SetFavoritesView(favoritesOnly)

			month, err := a.planner.MonthOrToday(firstArg(args))
			if err != nil {
				return err
			}
			mv, err := a.planner.Matrix(month, search)
			if err != nil {
				return err
			}
			printMatrix(cmd.OutOrStdout(), mv)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter employees by first or last name")
	cmd.Flags().BoolVar(&favoritesOnly, "favorites", false, "Show only yourself and your favorites")
	return cmd
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the user's UW allotment and usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()
			sess, err := a.login()
			if err != nil {
				return err
			}

			b, err := a.planner.Balance()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", sess.User().FullName())
			fmt.Fprintf(out, "  Allotment: %d days\n", b.DaysPerYear)
			fmt.Fprintf(out, "  Used:      %d days\n", b.DaysUsed)
			fmt.Fprintf(out, "  Remaining: %d days\n", b.DaysRemaining)
			return nil
		},
	}
}

func holidaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "holidays [YYYY]",
		Short: "List the public holidays of a year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			year := a.planner.Today().Year()
			if len(args) == 1 {
				if year, err = strconv.Atoi(args[0]); err != nil {
					return fmt.Errorf("invalid year %q", args[0])
				}
			}

			holidays := a.planner.Holidays(year)
			if len(holidays) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No holidays known for %d\n", year)
				return nil
			}
			for _, h := range holidays {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", dateutil.FormatISODate(h.Date), h.Date.Weekday().String()[:3], h.Name)
			}
			return nil
		},
	}
}

func vacationsCmd() *cobra.Command {
	var employeeID string

	cmd := &cobra.Command{
		Use:   "vacations",
		Short: "List vacation records",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()
			if _, err := a.login(); err != nil {
				return err
			}

			records, err := a.planner.Records(employeeID)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTYPE\tFROM\tTO\tSTATUS\tNOTES")
			for _, r := range records {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.Type,
					dateutil.FormatISODate(r.StartDate),
					dateutil.FormatISODate(r.EndDate),
					r.Status, r.Notes)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&employeeID, "employee", "e", "", "Employee id (default: the user)")
	return cmd
}

func favoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List the user's favorite employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()
			if _, err := a.login(); err != nil {
				return err
			}

			favs, err := a.planner.Favorites()
			if err != nil {
				return err
			}
			if len(favs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favorites")
				return nil
			}
			for _, e := range favs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  (%s)\n", e.ID, e.FullName(), e.Team)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <employee-id>",
		Short: "Add or remove a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()
			if _, err := a.login(); err != nil {
				return err
			}

			added, err := a.planner.ToggleFavorite(args[0])
			if err != nil {
				return err
			}
			if added {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", args[0])
			}
			return nil
		},
	})

	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// printMonth renders the 6-week grid. Days outside the month are dimmed
// with dots, a trailing code marks the user's absence, '*' a holiday.
func printMonth(w io.Writer, mv view.MonthView) {
	fmt.Fprintf(w, "%s %d\n", mv.Month.Month(), mv.Month.Year())
	for _, h := range mv.Headers {
		fmt.Fprintf(w, "%-6s", h)
	}
	fmt.Fprintln(w)

	for i, d := range mv.Days {
		fmt.Fprintf(w, "%-6s", dayLabel(d))
		if (i+1)%7 == 0 {
			fmt.Fprintln(w)
		}
	}

	var notes []string
	for _, d := range mv.Days {
		if d.IsCurrentMonth && d.IsHoliday() {
			notes = append(notes, fmt.Sprintf("  * %s %s", dateutil.MonthDay(d.Date), d.HolidayName))
		}
	}
	if len(notes) > 0 {
		fmt.Fprintln(w, strings.Join(notes, "\n"))
	}
}

func dayLabel(d view.Day) string {
	if !d.IsCurrentMonth {
		return ".."
	}
	label := fmt.Sprintf("%2d", d.Date.Day())
	switch {
	case d.Self != nil:
		label += string(d.Self.Type)
	case d.IsHoliday():
		label += "*"
	}
	if d.IsToday {
		label = "[" + label + "]"
	}
	return label
}

// printMatrix renders one row per employee with a column per day
func printMatrix(w io.Writer, mv view.MatrixView) {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	fmt.Fprint(tw, "\t")
	for _, c := range mv.Columns {
		fmt.Fprintf(tw, "%d\t", c.Date.Day())
	}
	fmt.Fprintln(tw)

	fmt.Fprint(tw, "\t")
	for _, c := range mv.Columns {
		fmt.Fprintf(tw, "%s\t", c.Weekday)
	}
	fmt.Fprintln(tw)

	for _, row := range mv.Rows {
		name := row.Employee.FullName()
		if row.IsSelf {
			name += " (you)"
		}
		fmt.Fprintf(tw, "%s\t", name)
		for i, cell := range row.Cells {
			switch {
			case cell.Absent():
				fmt.Fprintf(tw, "%s\t", cell.Type)
			case mv.Columns[i].Kind != calendar.DayTypeWorkday:
				fmt.Fprint(tw, "-\t")
			default:
				fmt.Fprint(tw, ".\t")
			}
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}
