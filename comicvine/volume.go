package comicvine

import (
	"context"
	"errors"
)

// BasicVolume is the form of a volume returned by list and search endpoints.
type BasicVolume struct {
	Aliases         string      `json:"aliases"`
	APIURL          string      `json:"api_detail_url"`
	DateAdded       Timestamp   `json:"date_added"`
	DateLastUpdated Timestamp   `json:"date_last_updated"`
	Description     string      `json:"description"`
	FirstIssue      *IssueEntry `json:"first_issue"`
	ID              int64       `json:"id"`
	Image           Image       `json:"image"`
	IssueCount      int         `json:"count_of_issues"`
	LastIssue       *IssueEntry `json:"last_issue"`
	Name            string      `json:"name"`
	Publisher       *Entry      `json:"publisher"`
	SiteURL         string      `json:"site_detail_url"`
	StartYear       Year        `json:"start_year"`
	Summary         string      `json:"deck"`
}

// AliasList returns the aliases split into a list.
func (v *BasicVolume) AliasList() []string {
	return splitAliases(v.Aliases)
}

func (v *BasicVolume) validate() error {
	if v.ID == 0 {
		return errors.New("volume: missing id")
	}
	if v.APIURL == "" {
		return errors.New("volume: missing api_detail_url")
	}
	if v.Name == "" {
		return errors.New("volume: missing name")
	}
	return nil
}

// Volume is the full form returned by the detail endpoint.
type Volume struct {
	BasicVolume
	Characters []CountEntry `json:"characters"`
	Concepts   []CountEntry `json:"concepts"`
	Creators   []CountEntry `json:"people"`
	Issues     []IssueEntry `json:"issues"`
	Locations  []CountEntry `json:"locations"`
	Objects    []CountEntry `json:"objects"`
}

// GetVolume requests a volume by id.
func (c *Client) GetVolume(ctx context.Context, id int64) (*Volume, error) {
	return getResource[Volume](ctx, c, ResourceVolume, id)
}

// ListVolumes requests a list of volumes.
func (c *Client) ListVolumes(ctx context.Context, opts *ListOptions) ([]BasicVolume, error) {
	return listResource[BasicVolume](ctx, c, ResourceVolume.ListPath(), opts)
}
