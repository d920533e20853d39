package cli

import (
	"context"
	"fmt"

	"github.com/dreamcatcher/dreamcatcher-go/internal/client/api"
	"github.com/dreamcatcher/dreamcatcher-go/internal/client/models"
)

// Sleep dispatches the sleep log subcommands.
func (a *App) Sleep(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		return a.sleepList(ctx)
	case "show":
		return a.sleepShow(ctx, rest)
	case "add":
		return a.sleepAdd(ctx)
	case "edit":
		return a.sleepEdit(ctx, rest)
	case "delete":
		return a.sleepDelete(ctx, rest)
	default:
		fmt.Fprintln(a.out, "Usage: sleep [list|show|add|edit|delete] [id]")
		return nil
	}
}

// formatDuration renders "7h30m"; falls back to a dash when the record's
// timestamps do not parse.
func formatDuration(log *models.SleepLog) string {
	d, err := log.Duration()
	if err != nil {
		return "-"
	}
	return d.Truncate(60e9).String()
}

func (a *App) sleepList(ctx context.Context) error {
	logs, err := a.sleep.List(ctx, api.SleepFilter{})
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.out, headerStyle.Render("Sleep log"))
	if len(logs) == 0 {
		fmt.Fprintln(a.out, dimStyle.Render("No sleep logged yet"))
		return nil
	}
	for _, l := range logs {
		fmt.Fprintf(a.out, "%4d  %s → %s  %s  %s\n",
			l.ID, l.SleepTime, l.WakeTime, formatDuration(&l), stars(l.Quality))
	}
	return nil
}

func (a *App) sleepShow(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Sleep log id")
	if err != nil {
		return a.fail(err)
	}
	log, err := a.sleep.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "%s %s → %s (%s)\n",
		labelStyle.Render("slept:"), log.SleepTime, log.WakeTime, formatDuration(log))
	fmt.Fprintf(a.out, "%s %s\n", labelStyle.Render("quality:"), stars(log.Quality))
	if log.DreamID != 0 {
		fmt.Fprintf(a.out, "%s #%d\n", labelStyle.Render("dream:"), log.DreamID)
	}
	if log.Notes != "" {
		fmt.Fprintln(a.out, log.Notes)
	}
	return nil
}

func (a *App) sleepAdd(ctx context.Context) error {
	sleepTime, err := GetSimpleText(a.reader, "Sleep time (e.g. 2026-08-30T23:00:00)", a.out)
	if err != nil {
		return err
	}
	wakeTime, err := GetSimpleText(a.reader, "Wake time (e.g. 2026-08-31T07:00:00)", a.out)
	if err != nil {
		return err
	}
	quality, err := GetInt(a.reader, "Quality 1-5 (optional)", a.out)
	if err != nil {
		return a.fail(err)
	}
	notes, err := GetSimpleText(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return err
	}
	dreamID, err := GetInt(a.reader, "Linked dream id (optional)", a.out)
	if err != nil {
		return a.fail(err)
	}

	log, err := a.sleep.Create(ctx, models.SleepLogCreate{
		SleepTime: sleepTime,
		WakeTime:  wakeTime,
		Quality:   quality,
		Notes:     notes,
		DreamID:   int64(dreamID),
	})
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Sleep log #%d saved", log.ID)))
	return nil
}

func (a *App) sleepEdit(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Sleep log id")
	if err != nil {
		return a.fail(err)
	}

	quality, err := GetInt(a.reader, "Quality 1-5 (Enter to keep)", a.out)
	if err != nil {
		return a.fail(err)
	}
	notes, err := GetSimpleText(a.reader, "Notes (Enter to keep)", a.out)
	if err != nil {
		return err
	}

	log, err := a.sleep.Update(ctx, id, models.SleepLogUpdate{
		Quality: intPtr(quality),
		Notes:   strPtr(notes),
	})
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Sleep log #%d updated", log.ID)))
	return nil
}

func (a *App) sleepDelete(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Sleep log id")
	if err != nil {
		return a.fail(err)
	}
	if err := a.sleep.Delete(ctx, id); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Sleep log #%d deleted", id)))
	return nil
}
