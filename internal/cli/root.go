package cli

import (
	"io"
	"os"
	"time"

	"github.com/julianstephens/timesheet/internal/errors"
	"github.com/julianstephens/timesheet/internal/state"
	"github.com/julianstephens/timesheet/internal/utils"
)

// Config is the resolved global configuration shared by every command.
type Config struct {
	WeekStart time.Weekday
	Location  *time.Location
	ConfigDir string
	Debug     bool
}

type Context struct {
	Store  *state.Store
	Config Config
	Out    io.Writer
}

func (ctx *Context) out() io.Writer {
	if ctx.Out == nil {
		return os.Stdout
	}
	return ctx.Out
}

func (ctx *Context) location() *time.Location {
	if ctx.Config.Location == nil {
		return time.Local
	}
	return ctx.Config.Location
}

// selectDate resolves a date argument and makes it the session's selected date.
// An empty argument keeps the current selection.
func (ctx *Context) selectDate(arg string) (state.AppState, error) {
	if arg == "" {
		return ctx.Store.Snapshot(), nil
	}
	loc := ctx.location()
	date, err := utils.ParseDateInLocation(arg, utils.NowIn(loc), loc)
	if err != nil {
		return state.AppState{}, errors.Usage("date", arg, err)
	}
	return ctx.Store.Dispatch(state.SelectDate{Date: date}), nil
}
