package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dreamcatcher/dreamcatcher-go/internal/client/models"
)

// IdeaFilter narrows an idea listing. Zero fields are omitted from the
// query.
type IdeaFilter struct {
	Category string
	Priority int
	Skip     int
	Limit    int
}

func (f IdeaFilter) values() url.Values {
	v := url.Values{}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Priority > 0 {
		v.Set("priority", strconv.Itoa(f.Priority))
	}
	if f.Skip > 0 {
		v.Set("skip", strconv.Itoa(f.Skip))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

// IdeasAPI wraps the /ideas resource.
type IdeasAPI struct {
	c *Client
}

func NewIdeasAPI(c *Client) *IdeasAPI {
	return &IdeasAPI{c: c}
}

func (i *IdeasAPI) List(ctx context.Context, filter IdeaFilter) ([]models.Idea, error) {
	var ideas []models.Idea
	if err := i.c.Get(ctx, "/ideas/", &ideas, WithQuery(filter.values())); err != nil {
		return nil, err
	}
	return ideas, nil
}

func (i *IdeasAPI) Get(ctx context.Context, id int64) (*models.Idea, error) {
	var idea models.Idea
	if err := i.c.Get(ctx, fmt.Sprintf("/ideas/%d", id), &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

func (i *IdeasAPI) Create(ctx context.Context, payload models.IdeaCreate) (*models.Idea, error) {
	var idea models.Idea
	if err := i.c.Post(ctx, "/ideas/", payload, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

func (i *IdeasAPI) Update(ctx context.Context, id int64, payload models.IdeaUpdate) (*models.Idea, error) {
	var idea models.Idea
	if err := i.c.Put(ctx, fmt.Sprintf("/ideas/%d", id), payload, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

func (i *IdeasAPI) Delete(ctx context.Context, id int64) error {
	return i.c.Delete(ctx, fmt.Sprintf("/ideas/%d", id), nil)
}
