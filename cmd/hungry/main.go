package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/HiImDanix/hungry-shift-helper/internal/config"
	"github.com/HiImDanix/hungry-shift-helper/internal/database"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/contract"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/service"
	"github.com/HiImDanix/hungry-shift-helper/internal/hurrier"
	"github.com/HiImDanix/hungry-shift-helper/internal/notifier"
	"github.com/HiImDanix/hungry-shift-helper/internal/scheduler"
	"github.com/HiImDanix/hungry-shift-helper/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		autoTake  bool
		frequency int
		debug     bool
		notifyURL string
		dbPath    string
	)

	cmd := &cobra.Command{
		Use:          "hungry",
		Short:        "Finds (and optionally takes) open hungry.dk courier shifts",
		Long:         "Polls hungry.dk for newly published shifts, matches them against your recurring timeslots, notifies you, and can take matching shifts automatically before someone else does.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil {
				log.Println("Warning: .env file not found")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("auto-take") {
				cfg.AutoTake = autoTake
			}
			if cmd.Flags().Changed("frequency") {
				cfg.Frequency = time.Duration(frequency) * time.Second
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debug
			}
			if notifyURL != "" {
				cfg.NotifyURL = notifyURL
			}
			if dbPath != "" {
				cfg.DatabasePath = dbPath
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return run(cfg)
		},
	}

	cmd.Flags().BoolVar(&autoTake, "auto-take", false, "automatically take shifts that fit your timeslots")
	cmd.Flags().IntVarP(&frequency, "frequency", "f", 0, "poll every <seconds>; omit for a single pass")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().StringVar(&notifyURL, "notify", "", "notification URL (slack://<token>@<channel> or an Apprise API endpoint)")
	cmd.PersistentFlags().StringVar(&dbPath, "database", "", "path to the sqlite database file")

	cmd.AddCommand(newTimeslotCmd(&dbPath))
	return cmd
}

func run(cfg *config.Config) error {
	dm, closeDB, err := openDataManager(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer closeDB()

	client := hurrier.New(hurrier.Credentials{
		Email:      cfg.Email,
		Password:   cfg.Password,
		EmployeeID: cfg.EmployeeID,
	}, dm.Session())

	notif, err := notifier.FromURL(cfg.NotifyURL)
	if err != nil {
		return err
	}

	svc, err := service.NewInstance(dm, client, client, notif, service.Options{
		AutoTake: cfg.AutoTake,
		Debug:    cfg.Debug,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Running!")
	return scheduler.New(svc.Poller, cfg.Frequency).Run(ctx)
}

func openDataManager(dbPath string) (contract.DataManager, func(), error) {
	if dbPath == "" {
		dbPath = config.Load().DatabasePath
	}

	db, err := database.New(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return database.NewInstance(db), func() { db.Close() }, nil
}

func newTimeslotCmd(dbPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeslot",
		Short: "Manage your recurring availability windows",
	}
	cmd.AddCommand(newTimeslotAddCmd(dbPath), newTimeslotListCmd(dbPath), newTimeslotRemoveCmd(dbPath))
	return cmd
}

func newTimeslotAddCmd(dbPath *string) *cobra.Command {
	var (
		days       string
		start      string
		end        string
		minMinutes int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recurring timeslot",
		Example: `  hungry timeslot add --days Mon,Wed,Fri --start 09:00 --end 17:00
  hungry timeslot add --days Saturday,Sunday --start 10:00 --end 22:00 --min-minutes 120`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := buildTimeslot(days, start, end, minMinutes)
			if err != nil {
				return err
			}

			dm, closeDB, err := openDataManager(*dbPath)
			if err != nil {
				return err
			}
			defer closeDB()

			if err := dm.Timeslot().Create(slot); err != nil {
				return err
			}
			fmt.Printf("Added timeslot %d: %s\n", slot.ID, slot)
			return nil
		},
	}

	cmd.Flags().StringVar(&days, "days", "", "comma-separated weekdays, e.g. Mon,Wed or Monday,Wednesday")
	cmd.Flags().StringVar(&start, "start", "", "window start, HH:MM")
	cmd.Flags().StringVar(&end, "end", "", "window end, HH:MM")
	cmd.Flags().IntVar(&minMinutes, "min-minutes", 0, "minimum shift length in minutes")
	cmd.MarkFlagRequired("days")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	return cmd
}

func newTimeslotListCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List configured timeslots",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dm, closeDB, err := openDataManager(*dbPath)
			if err != nil {
				return err
			}
			defer closeDB()

			slots, err := dm.Timeslot().List()
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				fmt.Println("No timeslots configured; every shift will match.")
				return nil
			}
			for _, slot := range slots {
				fmt.Printf("%d. %s\n", slot.ID, slot)
			}
			return nil
		},
	}
}

func newTimeslotRemoveCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:          "remove <id>",
		Short:        "Remove a timeslot by its id",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid timeslot id %q", args[0])
			}

			dm, closeDB, err := openDataManager(*dbPath)
			if err != nil {
				return err
			}
			defer closeDB()

			if err := dm.Timeslot().Delete(id); err != nil {
				return err
			}
			fmt.Printf("Removed timeslot %d\n", id)
			return nil
		},
	}
}

func buildTimeslot(days, start, end string, minMinutes int) (*entity.Timeslot, error) {
	var parsed []int
	for _, name := range strings.Split(days, ",") {
		day, ok := domain.WeekdayNumbers[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", strings.TrimSpace(name))
		}
		parsed = append(parsed, day)
	}

	startClock, err := time.Parse("15:04", start)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q, use HH:MM", start)
	}
	endClock, err := time.Parse("15:04", end)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %q, use HH:MM", end)
	}
	if !startClock.Before(endClock) {
		return nil, fmt.Errorf("start time must be before end time")
	}
	if minMinutes < 0 {
		return nil, fmt.Errorf("minimum shift length cannot be negative")
	}
	if window := int(endClock.Sub(startClock).Minutes()); minMinutes > window {
		return nil, fmt.Errorf("minimum shift length (%dm) exceeds the window (%dm)", minMinutes, window)
	}

	return &entity.Timeslot{
		Days:       parsed,
		StartTime:  startClock.Format("15:04"),
		EndTime:    endClock.Format("15:04"),
		MinMinutes: minMinutes,
	}, nil
}
