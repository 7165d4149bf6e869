package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iliyamo/movie-booking-gateway/internal/model"
)

// MovieClient talks to the movie service.
type MovieClient struct {
	base
}

// NewMovieClient builds a MovieClient against the given base URL.
func NewMovieClient(baseURL string, hc *http.Client) *MovieClient {
	return &MovieClient{base: newBase(baseURL, hc)}
}

// List returns every movie the service advertises.
func (c *MovieClient) List(ctx context.Context) ([]model.Movie, error) {
	var out []model.Movie
	if err := c.do(ctx, http.MethodGet, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one movie by id.
func (c *MovieClient) Get(ctx context.Context, movieID uint64) (*model.Movie, error) {
	var out model.Movie
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/%d", movieID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchByTitle performs a title substring search.
func (c *MovieClient) SearchByTitle(ctx context.Context, title string) ([]model.Movie, error) {
	var out []model.Movie
	path := "/search/title?title=" + url.QueryEscape(title)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ByGenre lists movies carrying the given genre tag.
func (c *MovieClient) ByGenre(ctx context.Context, genre string) ([]model.Movie, error) {
	var out []model.Movie
	if err := c.do(ctx, http.MethodGet, "/genre/"+url.PathEscape(genre), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registers a new movie.  Manager back-office only.
func (c *MovieClient) Create(ctx context.Context, m model.Movie) (*model.Movie, error) {
	var out model.Movie
	if err := c.do(ctx, http.MethodPost, "", m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an existing movie record.  Manager back-office only.
func (c *MovieClient) Update(ctx context.Context, m model.Movie) (*model.Movie, error) {
	var out model.Movie
	if err := c.do(ctx, http.MethodPut, "", m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a movie.  Manager back-office only.
func (c *MovieClient) Delete(ctx context.Context, movieID uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/%d", movieID), nil, nil)
}
