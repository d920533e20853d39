package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dreamcatcher/dreamcatcher-go/internal/client/models"
)

// DreamFilter narrows a dream listing. Zero fields are omitted from the
// query: absence means "no constraint", never an empty value.
type DreamFilter struct {
	Mood  int
	Skip  int
	Limit int
}

func (f DreamFilter) values() url.Values {
	v := url.Values{}
	if f.Mood > 0 {
		v.Set("mood", strconv.Itoa(f.Mood))
	}
	if f.Skip > 0 {
		v.Set("skip", strconv.Itoa(f.Skip))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

// DreamsAPI wraps the /dreams resource.
type DreamsAPI struct {
	c *Client
}

func NewDreamsAPI(c *Client) *DreamsAPI {
	return &DreamsAPI{c: c}
}

func (d *DreamsAPI) List(ctx context.Context, filter DreamFilter) ([]models.Dream, error) {
	var dreams []models.Dream
	if err := d.c.Get(ctx, "/dreams/", &dreams, WithQuery(filter.values())); err != nil {
		return nil, err
	}
	return dreams, nil
}

func (d *DreamsAPI) Get(ctx context.Context, id int64) (*models.Dream, error) {
	var dream models.Dream
	if err := d.c.Get(ctx, fmt.Sprintf("/dreams/%d", id), &dream); err != nil {
		return nil, err
	}
	return &dream, nil
}

func (d *DreamsAPI) Create(ctx context.Context, payload models.DreamCreate) (*models.Dream, error) {
	var dream models.Dream
	if err := d.c.Post(ctx, "/dreams/", payload, &dream); err != nil {
		return nil, err
	}
	return &dream, nil
}

// Update applies a partial payload and returns the server's authoritative
// post-mutation record. Callers replace their local copy, never merge.
func (d *DreamsAPI) Update(ctx context.Context, id int64, payload models.DreamUpdate) (*models.Dream, error) {
	var dream models.Dream
	if err := d.c.Put(ctx, fmt.Sprintf("/dreams/%d", id), payload, &dream); err != nil {
		return nil, err
	}
	return &dream, nil
}

func (d *DreamsAPI) Delete(ctx context.Context, id int64) error {
	return d.c.Delete(ctx, fmt.Sprintf("/dreams/%d", id), nil)
}

// Interpret asks the backend's AI to interpret the dream and returns the
// dream with ai_interpretation populated.
func (d *DreamsAPI) Interpret(ctx context.Context, id int64) (*models.Dream, error) {
	var dream models.Dream
	if err := d.c.Post(ctx, fmt.Sprintf("/dreams/%d/interpret", id), nil, &dream); err != nil {
		return nil, err
	}
	return &dream, nil
}
