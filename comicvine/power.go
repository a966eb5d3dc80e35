package comicvine

import (
	"context"
	"errors"
)

// BasicPower is the form of a power returned by list and search endpoints.
// Powers carry no image.
type BasicPower struct {
	Aliases         string    `json:"aliases"`
	APIURL          string    `json:"api_detail_url"`
	DateAdded       Timestamp `json:"date_added"`
	DateLastUpdated Timestamp `json:"date_last_updated"`
	Description     string    `json:"description"`
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	SiteURL         string    `json:"site_detail_url"`
}

// AliasList returns the aliases split into a list.
func (p *BasicPower) AliasList() []string {
	return splitAliases(p.Aliases)
}

func (p *BasicPower) validate() error {
	if p.ID == 0 {
		return errors.New("power: missing id")
	}
	if p.APIURL == "" {
		return errors.New("power: missing api_detail_url")
	}
	if p.Name == "" {
		return errors.New("power: missing name")
	}
	return nil
}

// Power is the full form returned by the detail endpoint.
type Power struct {
	BasicPower
	Characters []Entry `json:"characters"`
}

// GetPower requests a power by id.
func (c *Client) GetPower(ctx context.Context, id int64) (*Power, error) {
	return getResource[Power](ctx, c, ResourcePower, id)
}

// ListPowers requests a list of powers.
func (c *Client) ListPowers(ctx context.Context, opts *ListOptions) ([]BasicPower, error) {
	return listResource[BasicPower](ctx, c, ResourcePower.ListPath(), opts)
}
