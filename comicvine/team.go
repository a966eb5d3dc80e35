package comicvine

import (
	"context"
	"errors"
)

// BasicTeam is the form of a team returned by list and search endpoints.
type BasicTeam struct {
	Aliases         string      `json:"aliases"`
	APIURL          string      `json:"api_detail_url"`
	DateAdded       Timestamp   `json:"date_added"`
	DateLastUpdated Timestamp   `json:"date_last_updated"`
	Description     string      `json:"description"`
	FirstIssue      *IssueEntry `json:"first_appeared_in_issue"`
	ID              int64       `json:"id"`
	Image           Image       `json:"image"`
	IssueCount      int         `json:"count_of_isssue_appearances"`
	MemberCount     int         `json:"count_of_team_members"`
	Name            string      `json:"name"`
	Publisher       *Entry      `json:"publisher"`
	SiteURL         string      `json:"site_detail_url"`
	Summary         string      `json:"deck"`
}

// AliasList returns the aliases split into a list.
func (t *BasicTeam) AliasList() []string {
	return splitAliases(t.Aliases)
}

func (t *BasicTeam) validate() error {
	if t.ID == 0 {
		return errors.New("team: missing id")
	}
	if t.APIURL == "" {
		return errors.New("team: missing api_detail_url")
	}
	if t.Name == "" {
		return errors.New("team: missing name")
	}
	return nil
}

// Team is the full form returned by the detail endpoint.
type Team struct {
	BasicTeam
	Enemies         []Entry `json:"character_enemies"`
	Friends         []Entry `json:"character_friends"`
	Issues          []Entry `json:"issue_credits"`
	IssuesDisbanded []Entry `json:"disbanded_in_issues"`
	Members         []Entry `json:"characters"`
	StoryArcs       []Entry `json:"story_arc_credits"`
	Volumes         []Entry `json:"volume_credits"`
}

// GetTeam requests a team by id.
func (c *Client) GetTeam(ctx context.Context, id int64) (*Team, error) {
	return getResource[Team](ctx, c, ResourceTeam, id)
}

// ListTeams requests a list of teams.
func (c *Client) ListTeams(ctx context.Context, opts *ListOptions) ([]BasicTeam, error) {
	return listResource[BasicTeam](ctx, c, ResourceTeam.ListPath(), opts)
}
