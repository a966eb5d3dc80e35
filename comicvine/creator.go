package comicvine

import (
	"context"
	"errors"
)

// BasicCreator is the form of a creator returned by list and search
// endpoints. Creators are "person" resources on the wire.
type BasicCreator struct {
	Aliases         string    `json:"aliases"`
	APIURL          string    `json:"api_detail_url"`
	Country         string    `json:"country"`
	DateAdded       Timestamp `json:"date_added"`
	DateLastUpdated Timestamp `json:"date_last_updated"`
	DateOfBirth     Date      `json:"birth"`
	DateOfDeath     Date      `json:"death"`
	Description     string    `json:"description"`
	Email           string    `json:"email"`
	Gender          int       `json:"gender"`
	Hometown        string    `json:"hometown"`
	ID              int64     `json:"id"`
	Image           Image     `json:"image"`
	// The misspelled key is what the API actually sends.
	IssueCount int    `json:"count_of_isssue_appearances"`
	Name       string `json:"name"`
	SiteURL    string `json:"site_detail_url"`
	Summary    string `json:"deck"`
	Website    string `json:"website"`
}

// AliasList returns the aliases split into a list.
func (cr *BasicCreator) AliasList() []string {
	return splitAliases(cr.Aliases)
}

func (cr *BasicCreator) validate() error {
	if cr.ID == 0 {
		return errors.New("creator: missing id")
	}
	if cr.APIURL == "" {
		return errors.New("creator: missing api_detail_url")
	}
	if cr.Name == "" {
		return errors.New("creator: missing name")
	}
	return nil
}

// Creator is the full form returned by the detail endpoint.
type Creator struct {
	BasicCreator
	Characters []Entry `json:"created_characters"`
	Issues     []Entry `json:"issues"`
	StoryArcs  []Entry `json:"story_arc_credits"`
	Volumes    []Entry `json:"volume_credits"`
}

// GetCreator requests a creator by id.
func (c *Client) GetCreator(ctx context.Context, id int64) (*Creator, error) {
	return getResource[Creator](ctx, c, ResourceCreator, id)
}

// ListCreators requests a list of creators.
func (c *Client) ListCreators(ctx context.Context, opts *ListOptions) ([]BasicCreator, error) {
	return listResource[BasicCreator](ctx, c, ResourceCreator.ListPath(), opts)
}
