package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

type tableCreator interface {
	Create(ctx context.Context, t *domain.Table) (*domain.Table, error)
}

type scheduleUpserter interface {
	Upsert(ctx context.Context, schedule *domain.OperatingSchedule) (*domain.OperatingSchedule, error)
}

type bootstrapOptions struct {
	tables    int
	kind      string
	openTime  string
	closeTime string
	closedOn  []string
}

func newBootstrapCmd(configPath *string) *cobra.Command {
	opts := bootstrapOptions{}

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Seed tables and a weekly operating schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer a.Close()

			return a.txManager.Do(cmd.Context(), func(ctx context.Context) error {
				return runBootstrap(ctx, cmd.OutOrStdout(), a.tables, a.schedules, opts)
			})
		},
	}
	cmd.Flags().IntVar(&opts.tables, "tables", 6, "number of tables to create")
	cmd.Flags().StringVar(&opts.kind, "kind", "pool", "table kind: pool, snooker or carom")
	cmd.Flags().StringVar(&opts.openTime, "open", "10:00", "opening time HH:MM")
	cmd.Flags().StringVar(&opts.closeTime, "close", "24:00", "closing time HH:MM")
	cmd.Flags().StringSliceVar(&opts.closedOn, "closed-on", nil, "weekdays without opening, e.g. monday")

	return cmd
}

// runBootstrap создает столы "Стол N" и расписание на все дни недели.
// Повторный запуск обновляет существующие записи.
func runBootstrap(ctx context.Context, out io.Writer, tables tableCreator, schedules scheduleUpserter, opts bootstrapOptions) error {
	if opts.tables < 0 {
		return fmt.Errorf("--tables must not be negative")
	}
	if !domain.IsValidTableKind(opts.kind) {
		return fmt.Errorf("unknown table kind %q", opts.kind)
	}

	openTime, err := types.NewTimeStringFromString(opts.openTime)
	if err != nil {
		return fmt.Errorf("invalid --open: %w", err)
	}
	closeTime, err := types.NewTimeStringFromString(opts.closeTime)
	if err != nil {
		return fmt.Errorf("invalid --close: %w", err)
	}
	if !openTime.IsBefore(closeTime) {
		return fmt.Errorf("--open must be before --close")
	}

	closed := make(map[time.Weekday]bool, len(opts.closedOn))
	for _, name := range opts.closedOn {
		weekday, ok := domain.ParseWeekday(name)
		if !ok {
			return fmt.Errorf("unknown weekday %q", name)
		}
		closed[weekday] = true
	}

	for i := 1; i <= opts.tables; i++ {
		t, err := tables.Create(ctx, &domain.Table{
			Name:     fmt.Sprintf("Стол %d", i),
			Kind:     opts.kind,
			IsActive: true,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "table %d: %s (%s)\n", t.ID, t.Name, t.Kind)
	}

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		s, err := schedules.Upsert(ctx, &domain.OperatingSchedule{
			Weekday:          weekday,
			OpenTime:         openTime,
			CloseTime:        closeTime,
			IsActive:         true,
			IsClosedOverride: closed[weekday],
		})
		if err != nil {
			return err
		}
		state := fmt.Sprintf("%s-%s", s.OpenTime.Short(), s.CloseTime.Short())
		if s.IsClosedOverride {
			state = "closed"
		}
		fmt.Fprintf(out, "schedule %s: %s\n", s.Weekday, state)
	}

	return nil
}
