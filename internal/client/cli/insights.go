package cli

import (
	"context"
	"fmt"
)

// Insights fetches and renders cross-journal AI insights.
func (a *App) Insights(ctx context.Context) error {
	fmt.Fprintln(a.out, dimStyle.Render("Generating insights, this can take a while..."))

	insights, err := a.ai.Insights(ctx)
	if err != nil {
		return a.fail(err)
	}

	if insights.DreamInsights != "" {
		fmt.Fprintln(a.out, headerStyle.Render("Dreams"))
		fmt.Fprintln(a.out, insights.DreamInsights)
	}
	if insights.GoalInsights != "" {
		fmt.Fprintln(a.out, headerStyle.Render("Goals"))
		fmt.Fprintln(a.out, insights.GoalInsights)
	}
	if insights.SleepInsights != "" {
		fmt.Fprintln(a.out, headerStyle.Render("Sleep"))
		fmt.Fprintln(a.out, insights.SleepInsights)
	}
	fmt.Fprintln(a.out, headerStyle.Render("Overall"))
	fmt.Fprintln(a.out, insights.OverallInsights)
	return nil
}

// Brainstorm prompts for an idea and asks the AI to expand it.
func (a *App) Brainstorm(ctx context.Context) error {
	content, err := GetMultiline(a.reader, "Idea to brainstorm", a.out)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, "Category (optional)", a.out)
	if err != nil {
		return err
	}

	resp, err := a.ai.Brainstorm(ctx, content, category)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.out, headerStyle.Render("Suggestions"))
	fmt.Fprintln(a.out, resp.Suggestions)
	return nil
}

// AIStatus reports whether the backend's AI integration is configured.
func (a *App) AIStatus(ctx context.Context) error {
	status, err := a.ai.Status(ctx)
	if err != nil {
		return a.fail(err)
	}

	if status.Available {
		fmt.Fprintln(a.out, successStyle.Render("AI available: "+status.Message))
	} else {
		fmt.Fprintln(a.out, warnStyle.Render("AI unavailable: "+status.Message))
	}
	return nil
}
