package api

import (
	"context"

	"github.com/dreamcatcher/dreamcatcher-go/internal/client/models"
)

// AIAPI wraps the /ai resource: cross-journal insights and idea
// brainstorming.
type AIAPI struct {
	c *Client
}

func NewAIAPI(c *Client) *AIAPI {
	return &AIAPI{c: c}
}

// Status reports whether the backend has its AI integration configured.
func (a *AIAPI) Status(ctx context.Context) (*models.AIStatus, error) {
	var status models.AIStatus
	if err := a.c.Get(ctx, "/ai/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Insights generates insights across the user's dreams, goals and sleep
// logs. Slow by nature; pass a cancellable context.
func (a *AIAPI) Insights(ctx context.Context) (*models.Insights, error) {
	var insights models.Insights
	if err := a.c.Get(ctx, "/ai/insights", &insights); err != nil {
		return nil, err
	}
	return &insights, nil
}

// Brainstorm expands an idea into suggestions. Category is optional.
func (a *AIAPI) Brainstorm(ctx context.Context, content, category string) (*models.BrainstormResponse, error) {
	body := models.BrainstormRequest{IdeaContent: content, Category: category}
	var resp models.BrainstormResponse
	if err := a.c.Post(ctx, "/ai/brainstorm", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
