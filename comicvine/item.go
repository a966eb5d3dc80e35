package comicvine

import (
	"context"
	"errors"
)

// BasicItem is the form of an item returned by list and search endpoints.
// Items are "object" resources on the wire.
type BasicItem struct {
	Aliases         string      `json:"aliases"`
	APIURL          string      `json:"api_detail_url"`
	DateAdded       Timestamp   `json:"date_added"`
	DateLastUpdated Timestamp   `json:"date_last_updated"`
	Description     string      `json:"description"`
	FirstIssue      *IssueEntry `json:"first_appeared_in_issue"`
	ID              int64       `json:"id"`
	Image           Image       `json:"image"`
	IssueCount      int         `json:"count_of_issue_appearances"`
	Name            string      `json:"name"`
	SiteURL         string      `json:"site_detail_url"`
	StartYear       Year        `json:"start_year"`
	Summary         string      `json:"deck"`
}

// AliasList returns the aliases split into a list.
func (it *BasicItem) AliasList() []string {
	return splitAliases(it.Aliases)
}

func (it *BasicItem) validate() error {
	if it.ID == 0 {
		return errors.New("item: missing id")
	}
	if it.APIURL == "" {
		return errors.New("item: missing api_detail_url")
	}
	if it.Name == "" {
		return errors.New("item: missing name")
	}
	return nil
}

// Item is the full form returned by the detail endpoint.
type Item struct {
	BasicItem
	Issues    []Entry `json:"issue_credits"`
	StoryArcs []Entry `json:"story_arc_credits"`
	Volumes   []Entry `json:"volume_credits"`
}

// GetItem requests an item by id.
func (c *Client) GetItem(ctx context.Context, id int64) (*Item, error) {
	return getResource[Item](ctx, c, ResourceItem, id)
}

// ListItems requests a list of items.
func (c *Client) ListItems(ctx context.Context, opts *ListOptions) ([]BasicItem, error) {
	return listResource[BasicItem](ctx, c, ResourceItem.ListPath(), opts)
}
