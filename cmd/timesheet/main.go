package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/timesheet/internal/cli"
	"github.com/julianstephens/timesheet/internal/constants"
	"github.com/julianstephens/timesheet/internal/errors"
	"github.com/julianstephens/timesheet/internal/logger"
	"github.com/julianstephens/timesheet/internal/models"
	"github.com/julianstephens/timesheet/internal/seed"
	"github.com/julianstephens/timesheet/internal/state"
	"github.com/julianstephens/timesheet/internal/utils"
)

var CLI struct {
	Version   kong.VersionFlag
	ConfigDir string `help:"Directory for logs and the config file." type:"path" default:"${config_dir}" env:"TIMESHEET_CONFIG_DIR"`
	Debug     bool   `help:"Enable debug logging." env:"TIMESHEET_DEBUG"`
	WeekStart string `help:"First day of the week." enum:"sunday,monday" default:"${week_start}" env:"TIMESHEET_WEEK_START"`
	Timezone  string `help:"IANA timezone for calendar days, or 'Local'." default:"${timezone}" env:"TIMESHEET_TIMEZONE"`
	Entries   string `help:"JSON file of entries to start the session with." type:"path" env:"TIMESHEET_ENTRIES"`
	NoSample  bool   `help:"Start without the sample entries." env:"TIMESHEET_NO_SAMPLE"`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Week     cli.WeekCmd     `cmd:"" help:"Show hours per day for a week."`
	Day      cli.DayCmd      `cmd:"" help:"Show the entries touching a day."`
	Validate cli.ValidateCmd `cmd:"" help:"Check the session's entries for conflicts."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Weekly timesheet: log named activities and see hours per day"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(kong.JSON, constants.DefaultConfigFile),
		kong.Vars{
			"version":    constants.Version,
			"config_dir": constants.DefaultConfigDir,
			"timezone":   constants.DefaultTimezone,
			"week_start": strings.ToLower(constants.DefaultWeekStart.String()),
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: CLI.ConfigDir,
		Timezone:  CLI.Timezone,
		WeekStart: CLI.WeekStart,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	appCtx, err := newContext()
	if err != nil {
		errors.Fatal(err)
	}

	errors.Fatal(ctx.Run(appCtx))
}

func newContext() (*cli.Context, error) {
	loc, err := utils.LoadLocation(CLI.Timezone)
	if err != nil {
		return nil, errors.Usage("timezone", CLI.Timezone, err)
	}
	weekStart, err := utils.ParseWeekday(CLI.WeekStart)
	if err != nil {
		return nil, errors.Usage("week start", CLI.WeekStart, err)
	}

	now := utils.NowIn(loc)
	var entries []models.Entry
	if !CLI.NoSample {
		entries = append(entries, seed.Sample(now, weekStart)...)
	}
	if strings.TrimSpace(CLI.Entries) != "" {
		imported, err := seed.Load(CLI.Entries, loc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, imported...)
	}

	logger.Debug("session started",
		"timezone", loc.String(),
		"week_start", weekStart.String(),
		"entries", len(entries),
	)

	return &cli.Context{
		Store: state.NewStore(state.Initial(now, entries)),
		Config: cli.Config{
			WeekStart: weekStart,
			Location:  loc,
			ConfigDir: CLI.ConfigDir,
			Debug:     CLI.Debug,
		},
		Out: os.Stdout,
	}, nil
}
