package comicvine

import (
	"context"
	"errors"
)

// BasicConcept is the form of a concept returned by list and search
// endpoints.
type BasicConcept struct {
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
	SiteURL         string      `json:"site_detail_url"`
	StartYear       Year        `json:"start_year"`
	Summary         string      `json:"deck"`
}

// AliasList returns the aliases split into a list.
func (co *BasicConcept) AliasList() []string {
	return splitAliases(co.Aliases)
}

func (co *BasicConcept) validate() error {
	if co.ID == 0 {
		return errors.New("concept: missing id")
	}
	if co.APIURL == "" {
		return errors.New("concept: missing api_detail_url")
	}
	if co.Name == "" {
		return errors.New("concept: missing name")
	}
	return nil
}

// Concept is the full form returned by the detail endpoint.
type Concept struct {
	BasicConcept
	Issues  []IssueEntry `json:"issue_credits"`
	Volumes []Entry      `json:"volume_credits"`
}

// GetConcept requests a concept by id.
func (c *Client) GetConcept(ctx context.Context, id int64) (*Concept, error) {
	return getResource[Concept](ctx, c, ResourceConcept, id)
}

// ListConcepts requests a list of concepts.
func (c *Client) ListConcepts(ctx context.Context, opts *ListOptions) ([]BasicConcept, error) {
	return listResource[BasicConcept](ctx, c, ResourceConcept.ListPath(), opts)
}
