package comicvine

import (
	"context"
	"errors"
)

// BasicOrigin is the form of an origin returned by list and search
// endpoints. Origins are the smallest resource the API exposes.
type BasicOrigin struct {
	APIURL  string `json:"api_detail_url"`
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	SiteURL string `json:"site_detail_url"`
}

func (o *BasicOrigin) validate() error {
	if o.ID == 0 {
		return errors.New("origin: missing id")
	}
	if o.APIURL == "" {
		return errors.New("origin: missing api_detail_url")
	}
	if o.Name == "" {
		return errors.New("origin: missing name")
	}
	return nil
}

// Origin is the full form returned by the detail endpoint.
type Origin struct {
	BasicOrigin
	CharacterSet int     `json:"character_set"`
	Characters   []Entry `json:"characters"`
	Profiles     []int64 `json:"profiles"`
}

// GetOrigin requests an origin by id.
func (c *Client) GetOrigin(ctx context.Context, id int64) (*Origin, error) {
	return getResource[Origin](ctx, c, ResourceOrigin, id)
}

// ListOrigins requests a list of origins.
func (c *Client) ListOrigins(ctx context.Context, opts *ListOptions) ([]BasicOrigin, error) {
	return listResource[BasicOrigin](ctx, c, ResourceOrigin.ListPath(), opts)
}
