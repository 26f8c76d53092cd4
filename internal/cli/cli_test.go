package cli

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/timesheet/internal/errors"
	"github.com/julianstephens/timesheet/internal/models"
	"github.com/julianstephens/timesheet/internal/state"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.October, day, hour, minute, 0, 0, time.UTC)
}

func setupTestContext(t *testing.T, entries []models.Entry) (*Context, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	ctx := &Context{
		Store: state.NewStore(state.Initial(at(14, 10, 0), entries)),
		Config: Config{
			WeekStart: time.Sunday,
			Location:  time.UTC,
			ConfigDir: t.TempDir(),
		},
		Out: out,
	}
	return ctx, out
}

func sampleEntries() []models.Entry {
	return []models.Entry{
		{ID: "1", Name: "Mowing lawns", BeginsOn: at(12, 9, 0), EndsOn: at(12, 15, 30)},
		{ID: "2", Name: "Overnight security watch", BeginsOn: at(13, 22, 0), EndsOn: at(14, 7, 30)},
	}
}

func TestWeekCmd(t *testing.T) {
	ctx, out := setupTestContext(t, sampleEntries())

	cmd := &WeekCmd{Date: "2026-10-12"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("week command failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Week of 2026-10-11 (October 2026)",
		"Su 2026-10-11    0:00\n",
		"Mo 2026-10-12    6:30  *\n",
		"Tu 2026-10-13    2:00\n",
		"We 2026-10-14    7:30\n",
		"Sa 2026-10-17    0:00\n",
		"Total           16:00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}

	if snap := ctx.Store.Snapshot(); !snap.SelectedDate.Equal(at(12, 0, 0)) {
		t.Errorf("expected the date argument to become the selected date, got %v", snap.SelectedDate)
	}
}

func TestWeekCmdDefaultsToSelection(t *testing.T) {
	ctx, out := setupTestContext(t, nil)
	ctx.Config.WeekStart = time.Monday

	if err := (&WeekCmd{}).Run(ctx); err != nil {
		t.Fatalf("week command failed: %v", err)
	}
	if !strings.Contains(out.String(), "Week of 2026-10-12 (October 2026)") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "We 2026-10-14    0:00  *") {
		t.Errorf("expected the initial date to be marked:\n%s", out.String())
	}
}

func TestDayCmd(t *testing.T) {
	tests := []struct {
		name string
		date string
		want []string
	}{
		{
			name: "single entry",
			date: "2026-10-12",
			want: []string{"Entries on 2026-10-12:", "09:00–15:30  Mowing lawns", "6:30", "Total: 6:30"},
		},
		{
			name: "overnight start",
			date: "2026-10-13",
			want: []string{"22:00–2026-10-14 07:30  Overnight security watch", "Total: 2:00"},
		},
		{
			name: "overnight end",
			date: "2026-10-14",
			want: []string{"2026-10-13 22:00–07:30  Overnight security watch", "Total: 7:30"},
		},
		{
			name: "empty day",
			date: "2026-10-16",
			want: []string{"No entries", "Total: 0:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := setupTestContext(t, sampleEntries())
			if err := (&DayCmd{Date: tt.date}).Run(ctx); err != nil {
				t.Fatalf("day command failed: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestInvalidDateIsUsageError(t *testing.T) {
	ctx, _ := setupTestContext(t, nil)

	err := (&DayCmd{Date: "2026-13-40"}).Run(ctx)
	if err == nil {
		t.Fatal("expected an error for an invalid date")
	}
	var usage *errors.UsageError
	if !stderrors.As(err, &usage) {
		t.Fatalf("expected a UsageError, got %T", err)
	}
	if usage.Arg != "date" {
		t.Errorf("expected arg 'date', got %q", usage.Arg)
	}
}

func TestValidateCmd(t *testing.T) {
	entries := append(sampleEntries(), models.Entry{
		ID: "3", Name: "Lunch", BeginsOn: at(12, 12, 0), EndsOn: at(12, 13, 0),
	})
	ctx, out := setupTestContext(t, entries)

	if err := (&ValidateCmd{}).Run(ctx); err != nil {
		t.Fatalf("validate command failed: %v", err)
	}
	if !strings.Contains(out.String(), "Validating 3 entries") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), `Entries "Mowing lawns" and "Lunch" overlap`) {
		t.Errorf("expected overlap report, got:\n%s", out.String())
	}
}

func TestDayCmdMiddleOfLongEntry(t *testing.T) {
	ctx, out := setupTestContext(t, []models.Entry{
		{ID: "1", Name: "Shift", BeginsOn: at(12, 20, 0), EndsOn: at(14, 6, 0)},
	})

	if err := (&DayCmd{Date: "2026-10-13"}).Run(ctx); err != nil {
		t.Fatalf("day command failed: %v", err)
	}
	for _, want := range []string{"No entries", "Total: 0:00"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out.String())
		}
	}
}
