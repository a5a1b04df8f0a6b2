package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/internal/scheduling"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

func newSlotsCmd(configPath *string) *cobra.Command {
	var (
		tableID int64
		date    string
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print the slot grid of a table for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer a.Close()

			now := time.Now().In(a.location)

			d := types.DateOf(now)
			if date != "" {
				if d, err = types.ParseDate(date); err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
			}

			table, err := a.tables.GetByID(cmd.Context(), tableID)
			if err != nil {
				return err
			}
			if !table.IsActive {
				fmt.Fprintf(cmd.OutOrStdout(), "table %d (%s) is inactive\n", table.ID, table.Name)
				return nil
			}

			snap, err := a.engine.Snapshot(cmd.Context(), tableID, d)
			if err != nil {
				return err
			}

			return renderSlots(cmd.OutOrStdout(), snap, now)
		},
	}
	cmd.Flags().Int64Var(&tableID, "table", 0, "table ID")
	cmd.Flags().StringVar(&date, "date", "", "date YYYY-MM-DD (default: today in venue timezone)")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

// renderSlots печатает сетку слотов с пометками и максимальной длительностью
func renderSlots(out io.Writer, snap *scheduling.Snapshot, now time.Time) error {
	if !snap.Open {
		_, err := fmt.Fprintf(out, "table %d is closed on %s\n", snap.TableID, snap.Date)
		return err
	}

	fmt.Fprintf(out, "table %d, %s (%s), open %s-%s\n",
		snap.TableID, snap.Date, snap.Date.Weekday(), snap.Window.Open.Short(), snap.Window.Close.Short())

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tLABEL\tSTATE\tMAX HOURS")
	for _, slot := range snap.Slots(now) {
		maxHours := "-"
		if slot.IsAvailable {
			maxHours = fmt.Sprintf("%.1f", snap.MaxDuration(slot.CanonicalTime))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", slot.CanonicalTime.Short(), slot.Label, slotState(slot), maxHours)
	}
	return tw.Flush()
}

func slotState(slot domain.CandidateSlot) string {
	switch {
	case slot.IsPast:
		return "past"
	case slot.IsReserved:
		return "reserved"
	case slot.HasGapIssue:
		return "gap"
	case slot.IsAvailable:
		return "free"
	default:
		return "unavailable"
	}
}
