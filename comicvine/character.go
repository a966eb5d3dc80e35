package comicvine

import (
	"context"
	"errors"
)

// BasicCharacter is the form of a character returned by list and search
// endpoints.
type BasicCharacter struct {
	Aliases         string      `json:"aliases"`
	APIURL          string      `json:"api_detail_url"`
	DateAdded       Timestamp   `json:"date_added"`
	DateLastUpdated Timestamp   `json:"date_last_updated"`
	DateOfBirth     Date        `json:"birth"`
	Description     string      `json:"description"`
	FirstIssue      *IssueEntry `json:"first_appeared_in_issue"`
	Gender          int         `json:"gender"`
	ID              int64       `json:"id"`
	Image           Image       `json:"image"`
	IssueCount      int         `json:"count_of_issue_appearances"`
	Name            string      `json:"name"`
	Origin          *Entry      `json:"origin"`
	Publisher       *Entry      `json:"publisher"`
	RealName        string      `json:"real_name"`
	SiteURL         string      `json:"site_detail_url"`
	Summary         string      `json:"deck"`
}

// AliasList returns the aliases split into a list.
func (ch *BasicCharacter) AliasList() []string {
	return splitAliases(ch.Aliases)
}

func (ch *BasicCharacter) validate() error {
	if ch.ID == 0 {
		return errors.New("character: missing id")
	}
	if ch.APIURL == "" {
		return errors.New("character: missing api_detail_url")
	}
	if ch.Name == "" {
		return errors.New("character: missing name")
	}
	return nil
}

// Character is the full form returned by the detail endpoint.
type Character struct {
	BasicCharacter
	Creators      []Entry `json:"creators"`
	Deaths        []Entry `json:"issues_died_in"`
	Enemies       []Entry `json:"character_enemies"`
	EnemyTeams    []Entry `json:"team_enemies"`
	FriendlyTeams []Entry `json:"team_friends"`
	Friends       []Entry `json:"character_friends"`
	Issues        []Entry `json:"issue_credits"`
	Powers        []Entry `json:"powers"`
	StoryArcs     []Entry `json:"story_arc_credits"`
	Teams         []Entry `json:"teams"`
	Volumes       []Entry `json:"volume_credits"`
}

// GetCharacter requests a character by id.
func (c *Client) GetCharacter(ctx context.Context, id int64) (*Character, error) {
	return getResource[Character](ctx, c, ResourceCharacter, id)
}

// ListCharacters requests a list of characters.
func (c *Client) ListCharacters(ctx context.Context, opts *ListOptions) ([]BasicCharacter, error) {
	return listResource[BasicCharacter](ctx, c, ResourceCharacter.ListPath(), opts)
}
