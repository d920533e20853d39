package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dreamcatcher/dreamcatcher-go/internal/client/models"
)

// GoalFilter narrows a goal listing. Zero fields are omitted from the
// query.
type GoalFilter struct {
	Status   string
	Category string
	Skip     int
	Limit    int
}

func (f GoalFilter) values() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Skip > 0 {
		v.Set("skip", strconv.Itoa(f.Skip))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

// GoalsAPI wraps the /goals resource.
type GoalsAPI struct {
	c *Client
}

func NewGoalsAPI(c *Client) *GoalsAPI {
	return &GoalsAPI{c: c}
}

func (g *GoalsAPI) List(ctx context.Context, filter GoalFilter) ([]models.Goal, error) {
	var goals []models.Goal
	if err := g.c.Get(ctx, "/goals/", &goals, WithQuery(filter.values())); err != nil {
		return nil, err
	}
	return goals, nil
}

func (g *GoalsAPI) Get(ctx context.Context, id int64) (*models.Goal, error) {
	var goal models.Goal
	if err := g.c.Get(ctx, fmt.Sprintf("/goals/%d", id), &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (g *GoalsAPI) Create(ctx context.Context, payload models.GoalCreate) (*models.Goal, error) {
	var goal models.Goal
	if err := g.c.Post(ctx, "/goals/", payload, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (g *GoalsAPI) Update(ctx context.Context, id int64, payload models.GoalUpdate) (*models.Goal, error) {
	var goal models.Goal
	if err := g.c.Put(ctx, fmt.Sprintf("/goals/%d", id), payload, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (g *GoalsAPI) Delete(ctx context.Context, id int64) error {
	return g.c.Delete(ctx, fmt.Sprintf("/goals/%d", id), nil)
}

// Suggest asks the backend's AI for next steps and returns the goal with
// ai_suggestions populated.
func (g *GoalsAPI) Suggest(ctx context.Context, id int64) (*models.Goal, error) {
	var goal models.Goal
	if err := g.c.Post(ctx, fmt.Sprintf("/goals/%d/suggest", id), nil, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// Categories lists the category values the backend accepts.
func (g *GoalsAPI) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := g.c.Get(ctx, "/goals/categories/list", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Statuses lists the status values the backend accepts.
func (g *GoalsAPI) Statuses(ctx context.Context) ([]string, error) {
	var statuses []string
	if err := g.c.Get(ctx, "/goals/statuses/list", &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}
