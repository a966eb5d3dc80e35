package comicvine

import (
	"context"
	"errors"
)

// BasicIssue is the form of an issue returned by list and search endpoints.
type BasicIssue struct {
	Aliases          string            `json:"aliases"`
	APIURL           string            `json:"api_detail_url"`
	AssociatedImages []AssociatedImage `json:"associated_images"`
	CoverDate        Date              `json:"cover_date"`
	DateAdded        Timestamp         `json:"date_added"`
	DateLastUpdated  Timestamp         `json:"date_last_updated"`
	Description      string            `json:"description"`
	ID               int64             `json:"id"`
	Image            Image             `json:"image"`
	Name             string            `json:"name"`
	Number           string            `json:"issue_number"`
	SiteURL          string            `json:"site_detail_url"`
	StoreDate        Date              `json:"store_date"`
	Summary          string            `json:"deck"`
	Volume           *Entry            `json:"volume"`
}

// AliasList returns the aliases split into a list.
func (i *BasicIssue) AliasList() []string {
	return splitAliases(i.Aliases)
}

// Issue names are frequently empty, so only the identifiers are required.
func (i *BasicIssue) validate() error {
	if i.ID == 0 {
		return errors.New("issue: missing id")
	}
	if i.APIURL == "" {
		return errors.New("issue: missing api_detail_url")
	}
	return nil
}

// Issue is the full form returned by the detail endpoint.
type Issue struct {
	BasicIssue
	Characters                []Entry        `json:"character_credits"`
	Concepts                  []Entry        `json:"concept_credits"`
	Creators                  []CreatorEntry `json:"person_credits"`
	Deaths                    []Entry        `json:"character_died_in"`
	FirstAppearanceCharacters []Entry        `json:"first_appearance_characters"`
	FirstAppearanceConcepts   []Entry        `json:"first_appearance_concepts"`
	FirstAppearanceLocations  []Entry        `json:"first_appearance_locations"`
	FirstAppearanceObjects    []Entry        `json:"first_appearance_objects"`
	FirstAppearanceStoryArcs  []Entry        `json:"first_appearance_storyarcs"`
	FirstAppearanceTeams      []Entry        `json:"first_appearance_teams"`
	Locations                 []Entry        `json:"location_credits"`
	Objects                   []Entry        `json:"object_credits"`
	StoryArcs                 []Entry        `json:"story_arc_credits"`
	Teams                     []Entry        `json:"team_credits"`
	TeamsDisbanded            []Entry        `json:"team_disbanded_in"`
}

// GetIssue requests an issue by id.
func (c *Client) GetIssue(ctx context.Context, id int64) (*Issue, error) {
	return getResource[Issue](ctx, c, ResourceIssue, id)
}

// ListIssues requests a list of issues.
func (c *Client) ListIssues(ctx context.Context, opts *ListOptions) ([]BasicIssue, error) {
	return listResource[BasicIssue](ctx, c, ResourceIssue.ListPath(), opts)
}
