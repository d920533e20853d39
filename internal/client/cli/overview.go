package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/dreamcatcher/dreamcatcher-go/internal/client/api"
	"github.com/dreamcatcher/dreamcatcher-go/internal/client/models"
)

// Overview renders the dashboard: recent entries from all four journals,
// fetched concurrently. Each fetch settles independently — a section that
// fails renders its own error without cancelling the others.
func (a *App) Overview(ctx context.Context) error {
	var (
		wg sync.WaitGroup

		dreams    []models.Dream
		dreamsErr error
		goals     []models.Goal
		goalsErr  error
		ideas     []models.Idea
		ideasErr  error
		logs      []models.SleepLog
		logsErr   error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		dreams, dreamsErr = a.dreams.List(ctx, api.DreamFilter{Limit: 5})
	}()
	go func() {
		defer wg.Done()
		goals, goalsErr = a.goals.List(ctx, api.GoalFilter{Limit: 5})
	}()
	go func() {
		defer wg.Done()
		ideas, ideasErr = a.ideas.List(ctx, api.IdeaFilter{Limit: 5})
	}()
	go func() {
		defer wg.Done()
		logs, logsErr = a.sleep.List(ctx, api.SleepFilter{Limit: 7})
	}()
	wg.Wait()

	fmt.Fprintln(a.out, headerStyle.Render("Recent dreams"))
	if dreamsErr != nil {
		fmt.Fprintln(a.out, errorStyle.Render(dreamsErr.Error()))
	} else {
		for _, d := range dreams {
			fmt.Fprintf(a.out, "%4d  %s  %s\n", d.ID, d.DreamDate, truncate(d.Title, 40))
		}
	}

	fmt.Fprintln(a.out, headerStyle.Render("Goals"))
	if goalsErr != nil {
		fmt.Fprintln(a.out, errorStyle.Render(goalsErr.Error()))
	} else {
		active, completed := 0, 0
		for _, g := range goals {
			switch g.Status {
			case models.GoalStatusInProgress:
				active++
			case models.GoalStatusCompleted:
				completed++
			}
			fmt.Fprintf(a.out, "%4d  %-12s %3d%%  %s\n", g.ID, g.Status, g.Progress, truncate(g.Title, 40))
		}
		fmt.Fprintln(a.out, dimStyle.Render(fmt.Sprintf("%d in progress, %d completed", active, completed)))
	}

	fmt.Fprintln(a.out, headerStyle.Render("Ideas"))
	if ideasErr != nil {
		fmt.Fprintln(a.out, errorStyle.Render(ideasErr.Error()))
	} else {
		for _, i := range ideas {
			fmt.Fprintf(a.out, "%4d  %-7s %s\n", i.ID, models.IdeaPriorityLabel(i.Priority), truncate(i.Content, 50))
		}
	}

	fmt.Fprintln(a.out, headerStyle.Render("Sleep"))
	if logsErr != nil {
		fmt.Fprintln(a.out, errorStyle.Render(logsErr.Error()))
	} else {
		total := 0
		for _, l := range logs {
			total += l.Quality
			fmt.Fprintf(a.out, "%4d  %s  %s\n", l.ID, formatDuration(&l), stars(l.Quality))
		}
		if len(logs) > 0 {
			fmt.Fprintln(a.out, dimStyle.Render(fmt.Sprintf("avg quality %.1f over %d nights", float64(total)/float64(len(logs)), len(logs))))
		}
	}

	return nil
}
