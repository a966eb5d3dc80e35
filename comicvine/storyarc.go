package comicvine

import (
	"context"
	"errors"
)

// BasicStoryArc is the form of a story arc returned by list and search
// endpoints.
type BasicStoryArc struct {
	Aliases         string      `json:"aliases"`
	APIURL          string      `json:"api_detail_url"`
	DateAdded       Timestamp   `json:"date_added"`
	DateLastUpdated Timestamp   `json:"date_last_updated"`
	Description     string      `json:"description"`
	FirstIssue      *IssueEntry `json:"first_appeared_in_issue"`
	ID              int64       `json:"id"`
	Image           Image       `json:"image"`
	IssueCount      int         `json:"count_of_isssue_appearances"`
	Name            string      `json:"name"`
	Publisher       *Entry      `json:"publisher"`
	SiteURL         string      `json:"site_detail_url"`
	Summary         string      `json:"deck"`
}

// AliasList returns the aliases split into a list.
func (s *BasicStoryArc) AliasList() []string {
	return splitAliases(s.Aliases)
}

func (s *BasicStoryArc) validate() error {
	if s.ID == 0 {
		return errors.New("story arc: missing id")
	}
	if s.APIURL == "" {
		return errors.New("story arc: missing api_detail_url")
	}
	if s.Name == "" {
		return errors.New("story arc: missing name")
	}
	return nil
}

// StoryArc is the full form returned by the detail endpoint.
type StoryArc struct {
	BasicStoryArc
	Issues []Entry `json:"issues"`
}

// GetStoryArc requests a story arc by id.
func (c *Client) GetStoryArc(ctx context.Context, id int64) (*StoryArc, error) {
	return getResource[StoryArc](ctx, c, ResourceStoryArc, id)
}

// ListStoryArcs requests a list of story arcs.
func (c *Client) ListStoryArcs(ctx context.Context, opts *ListOptions) ([]BasicStoryArc, error) {
	return listResource[BasicStoryArc](ctx, c, ResourceStoryArc.ListPath(), opts)
}
