package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dreamcatcher/dreamcatcher-go/internal/client/models"
)

// SleepFilter narrows a sleep-log listing. Zero fields are omitted from
// the query.
type SleepFilter struct {
	Quality int
	Skip    int
	Limit   int
}

func (f SleepFilter) values() url.Values {
	v := url.Values{}
	if f.Quality > 0 {
		v.Set("quality", strconv.Itoa(f.Quality))
	}
	if f.Skip > 0 {
		v.Set("skip", strconv.Itoa(f.Skip))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

// SleepAPI wraps the /sleep resource.
type SleepAPI struct {
	c *Client
}

func NewSleepAPI(c *Client) *SleepAPI {
	return &SleepAPI{c: c}
}

func (s *SleepAPI) List(ctx context.Context, filter SleepFilter) ([]models.SleepLog, error) {
	var logs []models.SleepLog
	if err := s.c.Get(ctx, "/sleep/", &logs, WithQuery(filter.values())); err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *SleepAPI) Get(ctx context.Context, id int64) (*models.SleepLog, error) {
	var log models.SleepLog
	if err := s.c.Get(ctx, fmt.Sprintf("/sleep/%d", id), &log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *SleepAPI) Create(ctx context.Context, payload models.SleepLogCreate) (*models.SleepLog, error) {
	var log models.SleepLog
	if err := s.c.Post(ctx, "/sleep/", payload, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *SleepAPI) Update(ctx context.Context, id int64, payload models.SleepLogUpdate) (*models.SleepLog, error) {
	var log models.SleepLog
	if err := s.c.Put(ctx, fmt.Sprintf("/sleep/%d", id), payload, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *SleepAPI) Delete(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, fmt.Sprintf("/sleep/%d", id), nil)
}
