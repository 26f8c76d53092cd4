package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/timesheet/internal/logger"
	"github.com/julianstephens/timesheet/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	// stderr belongs to the terminal UI from here on
	err := logger.Init(logger.Config{
		Debug:     ctx.Config.Debug,
		ConfigDir: ctx.Config.ConfigDir,
		Quiet:     true,
		Timezone:  ctx.location().String(),
		WeekStart: strings.ToLower(ctx.Config.WeekStart.String()),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	m := tui.NewModel(ctx.Store, tui.Options{
		WeekStart: ctx.Config.WeekStart,
		Location:  ctx.location(),
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
