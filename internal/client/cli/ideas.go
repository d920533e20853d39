package cli

import (
	"context"
	"fmt"

	"github.com/dreamcatcher/dreamcatcher-go/internal/client/api"
	"github.com/dreamcatcher/dreamcatcher-go/internal/client/models"
)

// Ideas dispatches the idea log subcommands.
func (a *App) Ideas(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		return a.ideasList(ctx)
	case "show":
		return a.ideasShow(ctx, rest)
	case "add":
		return a.ideasAdd(ctx)
	case "edit":
		return a.ideasEdit(ctx, rest)
	case "delete":
		return a.ideasDelete(ctx, rest)
	default:
		fmt.Fprintln(a.out, "Usage: ideas [list|show|add|edit|delete] [id]")
		return nil
	}
}

func (a *App) ideasList(ctx context.Context) error {
	ideas, err := a.ideas.List(ctx, api.IdeaFilter{})
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.out, headerStyle.Render("Ideas"))
	if len(ideas) == 0 {
		fmt.Fprintln(a.out, dimStyle.Render("No ideas yet"))
		return nil
	}
	for _, i := range ideas {
		fmt.Fprintf(a.out, "%4d  %-7s %s  %s\n",
			i.ID, models.IdeaPriorityLabel(i.Priority), dimStyle.Render(i.Category),
			truncate(i.Content, 50))
	}
	return nil
}

func (a *App) ideasShow(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Idea id")
	if err != nil {
		return a.fail(err)
	}
	idea, err := a.ideas.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "%s %s   %s %s   %s %s\n",
		labelStyle.Render("priority:"), models.IdeaPriorityLabel(idea.Priority),
		labelStyle.Render("category:"), idea.Category,
		labelStyle.Render("tags:"), joinTags(idea.Tags))
	fmt.Fprintln(a.out, idea.Content)
	return nil
}

func (a *App) ideasAdd(ctx context.Context) error {
	content, err := GetMultiline(a.reader, "What's the idea?", a.out)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, "Category (optional)", a.out)
	if err != nil {
		return err
	}
	priority, err := GetInt(a.reader, "Priority 1-5 (optional)", a.out)
	if err != nil {
		return a.fail(err)
	}
	tags, err := GetTags(a.reader, "Tags, comma separated (optional)", a.out)
	if err != nil {
		return err
	}

	idea, err := a.ideas.Create(ctx, models.IdeaCreate{
		Content:  content,
		Category: category,
		Priority: priority,
		Tags:     tags,
	})
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Idea #%d saved", idea.ID)))
	return nil
}

func (a *App) ideasEdit(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Idea id")
	if err != nil {
		return a.fail(err)
	}

	content, err := GetMultiline(a.reader, "Content (empty to keep)", a.out)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, "Category (Enter to keep)", a.out)
	if err != nil {
		return err
	}
	priority, err := GetInt(a.reader, "Priority 1-5 (Enter to keep)", a.out)
	if err != nil {
		return a.fail(err)
	}

	idea, err := a.ideas.Update(ctx, id, models.IdeaUpdate{
		Content:  strPtr(content),
		Category: strPtr(category),
		Priority: intPtr(priority),
	})
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Idea #%d updated", idea.ID)))
	return nil
}

func (a *App) ideasDelete(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Idea id")
	if err != nil {
		return a.fail(err)
	}
	if err := a.ideas.Delete(ctx, id); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Idea #%d deleted", id)))
	return nil
}
