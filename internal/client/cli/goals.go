package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dreamcatcher/dreamcatcher-go/internal/client/api"
	"github.com/dreamcatcher/dreamcatcher-go/internal/client/models"
)

// Goals dispatches the goal tracker subcommands.
func (a *App) Goals(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		return a.goalsList(ctx, rest)
	case "show":
		return a.goalsShow(ctx, rest)
	case "add":
		return a.goalsAdd(ctx)
	case "edit":
		return a.goalsEdit(ctx, rest)
	case "delete":
		return a.goalsDelete(ctx, rest)
	case "suggest":
		return a.goalsSuggest(ctx, rest)
	case "categories":
		return a.goalsCategories(ctx)
	case "statuses":
		return a.goalsStatuses(ctx)
	default:
		fmt.Fprintln(a.out, "Usage: goals [list [status]|show|add|edit|delete|suggest|categories|statuses] [id]")
		return nil
	}
}

func (a *App) goalsList(ctx context.Context, args []string) error {
	filter := api.GoalFilter{}
	if len(args) > 0 {
		filter.Status = args[0]
	}

	goals, err := a.goals.List(ctx, filter)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.out, headerStyle.Render("Goals"))
	if len(goals) == 0 {
		fmt.Fprintln(a.out, dimStyle.Render("No goals yet"))
		return nil
	}
	for _, g := range goals {
		fmt.Fprintf(a.out, "%4d  %-12s %3d%%  %s  %s\n",
			g.ID, g.Status, g.Progress, dimStyle.Render(g.Category),
			titleStyle.Render(truncate(g.Title, 40)))
	}
	return nil
}

func (a *App) goalsShow(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Goal id")
	if err != nil {
		return a.fail(err)
	}
	goal, err := a.goals.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	a.renderGoal(goal)
	return nil
}

func (a *App) renderGoal(g *models.Goal) {
	fmt.Fprintln(a.out, titleStyle.Render(g.Title))
	fmt.Fprintf(a.out, "%s %s   %s %s   %s %d%%\n",
		labelStyle.Render("category:"), g.Category,
		labelStyle.Render("status:"), g.Status,
		labelStyle.Render("progress:"), g.Progress)
	if g.TargetDate != "" {
		fmt.Fprintf(a.out, "%s %s\n", labelStyle.Render("target:"), g.TargetDate)
	}
	if g.Description != "" {
		fmt.Fprintln(a.out, g.Description)
	}
	for _, m := range g.Milestones {
		mark := "[ ]"
		if m.Completed {
			mark = "[x]"
		}
		fmt.Fprintf(a.out, "  %s %s\n", mark, m.Title)
	}
	if g.AISuggestions != "" {
		fmt.Fprintln(a.out, headerStyle.Render("Suggestions"))
		fmt.Fprintln(a.out, g.AISuggestions)
	}
}

func (a *App) goalsAdd(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, "Category (personal/career/health/learning/financial/other, optional)", a.out)
	if err != nil {
		return err
	}
	target, err := GetSimpleText(a.reader, "Target date YYYY-MM-DD (optional)", a.out)
	if err != nil {
		return err
	}
	milestoneTitles, err := GetTags(a.reader, "Milestones, comma separated (optional)", a.out)
	if err != nil {
		return err
	}

	var milestones []models.Milestone
	for _, t := range milestoneTitles {
		milestones = append(milestones, models.Milestone{Title: t})
	}

	goal, err := a.goals.Create(ctx, models.GoalCreate{
		Title:       title,
		Description: description,
		Category:    strings.ToLower(category),
		TargetDate:  target,
		Milestones:  milestones,
	})
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Goal #%d saved", goal.ID)))
	return nil
}

func (a *App) goalsEdit(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Goal id")
	if err != nil {
		return a.fail(err)
	}

	status, err := GetSimpleText(a.reader, "Status (Enter to keep)", a.out)
	if err != nil {
		return err
	}
	progress, err := GetInt(a.reader, "Progress 0-100 (Enter to keep)", a.out)
	if err != nil {
		return a.fail(err)
	}
	title, err := GetSimpleText(a.reader, "Title (Enter to keep)", a.out)
	if err != nil {
		return err
	}

	goal, err := a.goals.Update(ctx, id, models.GoalUpdate{
		Status:   strPtr(strings.ToLower(status)),
		Progress: intPtr(progress),
		Title:    strPtr(title),
	})
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Goal #%d updated", goal.ID)))
	return nil
}

func (a *App) goalsDelete(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Goal id")
	if err != nil {
		return a.fail(err)
	}
	if err := a.goals.Delete(ctx, id); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Goal #%d deleted", id)))
	return nil
}

func (a *App) goalsSuggest(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Goal id")
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, dimStyle.Render("Asking the AI for next steps..."))
	goal, err := a.goals.Suggest(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	a.renderGoal(goal)
	return nil
}

func (a *App) goalsCategories(ctx context.Context) error {
	categories, err := a.goals.Categories(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, strings.Join(categories, ", "))
	return nil
}

func (a *App) goalsStatuses(ctx context.Context) error {
	statuses, err := a.goals.Statuses(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, strings.Join(statuses, ", "))
	return nil
}
