package comicvine

import (
	"context"
	"errors"
)

// BasicPublisher is the form of a publisher returned by list and search
// endpoints.
type BasicPublisher struct {
	Aliases         string    `json:"aliases"`
	APIURL          string    `json:"api_detail_url"`
	DateAdded       Timestamp `json:"date_added"`
	DateLastUpdated Timestamp `json:"date_last_updated"`
	Description     string    `json:"description"`
	ID              int64     `json:"id"`
	Image           Image     `json:"image"`
	LocationAddress string    `json:"location_address"`
	LocationCity    string    `json:"location_city"`
	LocationState   string    `json:"location_state"`
	Name            string    `json:"name"`
	SiteURL         string    `json:"site_detail_url"`
	Summary         string    `json:"deck"`
}

// AliasList returns the aliases split into a list.
func (p *BasicPublisher) AliasList() []string {
	return splitAliases(p.Aliases)
}

func (p *BasicPublisher) validate() error {
	if p.ID == 0 {
		return errors.New("publisher: missing id")
	}
	if p.APIURL == "" {
		return errors.New("publisher: missing api_detail_url")
	}
	if p.Name == "" {
		return errors.New("publisher: missing name")
	}
	return nil
}

// Publisher is the full form returned by the detail endpoint.
type Publisher struct {
	BasicPublisher
	Characters []Entry `json:"characters"`
	StoryArcs  []Entry `json:"story_arcs"`
	Teams      []Entry `json:"teams"`
	Volumes    []Entry `json:"volumes"`
}

// GetPublisher requests a publisher by id.
func (c *Client) GetPublisher(ctx context.Context, id int64) (*Publisher, error) {
	return getResource[Publisher](ctx, c, ResourcePublisher, id)
}

// ListPublishers requests a list of publishers.
func (c *Client) ListPublishers(ctx context.Context, opts *ListOptions) ([]BasicPublisher, error) {
	return listResource[BasicPublisher](ctx, c, ResourcePublisher.ListPath(), opts)
}
