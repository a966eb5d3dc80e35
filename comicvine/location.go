package comicvine

import (
	"context"
	"errors"
)

// BasicLocation is the form of a location returned by list and search
// endpoints.
type BasicLocation struct {
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
func (l *BasicLocation) AliasList() []string {
	return splitAliases(l.Aliases)
}

func (l *BasicLocation) validate() error {
	if l.ID == 0 {
		return errors.New("location: missing id")
	}
	if l.APIURL == "" {
		return errors.New("location: missing api_detail_url")
	}
	if l.Name == "" {
		return errors.New("location: missing name")
	}
	return nil
}

// Location is the full form returned by the detail endpoint.
type Location struct {
	BasicLocation
	Issues    []IssueEntry `json:"issue_credits"`
	StoryArcs []Entry      `json:"story_arc_credits"`
	Volumes   []Entry      `json:"volume_credits"`
}

// GetLocation requests a location by id.
func (c *Client) GetLocation(ctx context.Context, id int64) (*Location, error) {
	return getResource[Location](ctx, c, ResourceLocation, id)
}

// ListLocations requests a list of locations.
func (c *Client) ListLocations(ctx context.Context, opts *ListOptions) ([]BasicLocation, error) {
	return listResource[BasicLocation](ctx, c, ResourceLocation.ListPath(), opts)
}
