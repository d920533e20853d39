package cli

import (
	"context"
	"fmt"

	"github.com/dreamcatcher/dreamcatcher-go/internal/client/api"
	"github.com/dreamcatcher/dreamcatcher-go/internal/client/models"
)

// Dreams dispatches the dream journal subcommands.
func (a *App) Dreams(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		return a.dreamsList(ctx)
	case "show":
		return a.dreamsShow(ctx, rest)
	case "add":
		return a.dreamsAdd(ctx)
	case "edit":
		return a.dreamsEdit(ctx, rest)
	case "delete":
		return a.dreamsDelete(ctx, rest)
	case "interpret":
		return a.dreamsInterpret(ctx, rest)
	default:
		fmt.Fprintln(a.out, "Usage: dreams [list|show|add|edit|delete|interpret] [id]")
		return nil
	}
}

func (a *App) dreamsList(ctx context.Context) error {
	dreams, err := a.dreams.List(ctx, api.DreamFilter{})
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.out, headerStyle.Render("Dreams"))
	if len(dreams) == 0 {
		fmt.Fprintln(a.out, dimStyle.Render("No dreams recorded yet"))
		return nil
	}
	for _, d := range dreams {
		fmt.Fprintf(a.out, "%4d  %s  %s  %s\n",
			d.ID, d.DreamDate, stars(d.Mood), titleStyle.Render(truncate(d.Title, 40)))
	}
	return nil
}

func (a *App) dreamsShow(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Dream id")
	if err != nil {
		return a.fail(err)
	}
	dream, err := a.dreams.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	a.renderDream(dream)
	return nil
}

func (a *App) renderDream(d *models.Dream) {
	fmt.Fprintln(a.out, titleStyle.Render(d.Title))
	fmt.Fprintf(a.out, "%s %s   %s %s   %s %s\n",
		labelStyle.Render("date:"), d.DreamDate,
		labelStyle.Render("mood:"), stars(d.Mood),
		labelStyle.Render("tags:"), joinTags(d.Tags))
	fmt.Fprintln(a.out, d.Content)
	if d.AIInterpretation != "" {
		fmt.Fprintln(a.out, headerStyle.Render("Interpretation"))
		fmt.Fprintln(a.out, d.AIInterpretation)
	}
}

func (a *App) dreamsAdd(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "What happened in the dream?", a.out)
	if err != nil {
		return err
	}
	mood, err := GetInt(a.reader, "Mood 1-5 (optional)", a.out)
	if err != nil {
		return a.fail(err)
	}
	tags, err := GetTags(a.reader, "Tags, comma separated (optional)", a.out)
	if err != nil {
		return err
	}
	date, err := GetSimpleText(a.reader, "Dream date YYYY-MM-DD (optional)", a.out)
	if err != nil {
		return err
	}

	dream, err := a.dreams.Create(ctx, models.DreamCreate{
		Title:     title,
		Content:   content,
		Mood:      mood,
		Tags:      tags,
		DreamDate: date,
	})
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Dream #%d saved", dream.ID)))
	return nil
}

// dreamsEdit sends only the fields the user filled in; Enter keeps the
// current value.
func (a *App) dreamsEdit(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Dream id")
	if err != nil {
		return a.fail(err)
	}

	title, err := GetSimpleText(a.reader, "Title (Enter to keep)", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content (empty to keep)", a.out)
	if err != nil {
		return err
	}
	mood, err := GetInt(a.reader, "Mood 1-5 (Enter to keep)", a.out)
	if err != nil {
		return a.fail(err)
	}

	dream, err := a.dreams.Update(ctx, id, models.DreamUpdate{
		Title:   strPtr(title),
		Content: strPtr(content),
		Mood:    intPtr(mood),
	})
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Dream #%d updated", dream.ID)))
	return nil
}

func (a *App) dreamsDelete(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Dream id")
	if err != nil {
		return a.fail(err)
	}
	if err := a.dreams.Delete(ctx, id); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Dream #%d deleted", id)))
	return nil
}

func (a *App) dreamsInterpret(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Dream id")
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, dimStyle.Render("Asking the AI for an interpretation..."))
	dream, err := a.dreams.Interpret(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	a.renderDream(dream)
	return nil
}
