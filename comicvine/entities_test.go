package comicvine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeDecode(t *testing.T) {
	const fixture = `{
		"aliases": null,
		"api_detail_url": "https://comicvine.gamespot.com/api/volume/4050-18216/",
		"count_of_issues": 144,
		"date_added": "2008-06-06 11:10:16",
		"date_last_updated": "2023-02-15 08:00:00",
		"deck": null,
		"description": "<p>The adventures of Mark Grayson.</p>",
		"first_issue": {
			"api_detail_url": "https://comicvine.gamespot.com/api/issue/4000-111265/",
			"id": 111265,
			"name": "Family Matters, Part 1",
			"issue_number": "1"
		},
		"id": 18216,
		"image": {
			"original_url": "https://comicvine.gamespot.com/a/original.jpg",
			"thumb_url": "https://comicvine.gamespot.com/a/thumb.jpg"
		},
		"last_issue": {
			"api_detail_url": "https://comicvine.gamespot.com/api/issue/4000-659168/",
			"id": 659168,
			"issue_number": "144"
		},
		"name": "Invincible",
		"publisher": {
			"api_detail_url": "https://comicvine.gamespot.com/api/publisher/4010-125/",
			"id": 125,
			"name": "Image"
		},
		"site_detail_url": "https://comicvine.gamespot.com/invincible/4050-18216/",
		"start_year": "2003",
		"characters": [
			{"api_detail_url": "https://comicvine.gamespot.com/api/character/4005-36765/", "id": 36765, "name": "Invincible", "count": 144}
		],
		"people": [
			{"api_detail_url": "https://comicvine.gamespot.com/api/person/4040-41468/", "id": 41468, "name": "Robert Kirkman", "count": 144}
		],
		"issues": [
			{"api_detail_url": "https://comicvine.gamespot.com/api/issue/4000-111265/", "id": 111265, "name": "Family Matters, Part 1", "issue_number": "1"}
		]
	}`

	var volume Volume
	require.NoError(t, json.Unmarshal([]byte(fixture), &volume))
	require.NoError(t, volume.validate())

	assert.Equal(t, int64(18216), volume.ID)
	assert.Equal(t, "Invincible", volume.Name)
	assert.Equal(t, Year(2003), volume.StartYear)
	assert.Equal(t, 144, volume.IssueCount)
	assert.Empty(t, volume.AliasList())

	require.NotNil(t, volume.Publisher)
	assert.Equal(t, "Image", volume.Publisher.Name)

	require.NotNil(t, volume.FirstIssue)
	assert.Equal(t, "1", volume.FirstIssue.Number)
	require.NotNil(t, volume.LastIssue)
	assert.Equal(t, "144", volume.LastIssue.Number)

	require.Len(t, volume.Characters, 1)
	assert.Equal(t, "Invincible", volume.Characters[0].Name)
	require.Len(t, volume.Creators, 1)
	assert.Equal(t, "Robert Kirkman", volume.Creators[0].Name)

	assert.Equal(t, "https://comicvine.gamespot.com/a/thumb.jpg", volume.Image.Thumbnail)
}

func TestIssueDecode(t *testing.T) {
	const fixture = `{
		"api_detail_url": "https://comicvine.gamespot.com/api/issue/4000-111265/",
		"cover_date": "2003-01-01",
		"store_date": null,
		"date_added": "2008-06-06 11:10:17",
		"date_last_updated": "2010-03-01 00:00:00",
		"id": 111265,
		"issue_number": "1",
		"name": "Family Matters, Part 1",
		"site_detail_url": "https://comicvine.gamespot.com/invincible-1/4000-111265/",
		"volume": {
			"api_detail_url": "https://comicvine.gamespot.com/api/volume/4050-18216/",
			"id": 18216,
			"name": "Invincible"
		},
		"person_credits": [
			{"api_detail_url": "https://comicvine.gamespot.com/api/person/4040-41468/", "id": 41468, "name": "Robert Kirkman", "role": "writer"},
			{"api_detail_url": "https://comicvine.gamespot.com/api/person/4040-42842/", "id": 42842, "name": "Cory Walker", "role": "artist, cover"}
		],
		"character_credits": [
			{"api_detail_url": "https://comicvine.gamespot.com/api/character/4005-36765/", "id": 36765, "name": "Invincible"}
		]
	}`

	var issue Issue
	require.NoError(t, json.Unmarshal([]byte(fixture), &issue))
	require.NoError(t, issue.validate())

	assert.Equal(t, int64(111265), issue.ID)
	assert.Equal(t, "1", issue.Number)
	assert.Equal(t, 2003, issue.CoverDate.Year())
	assert.True(t, issue.StoreDate.IsZero())

	require.NotNil(t, issue.Volume)
	assert.Equal(t, int64(18216), issue.Volume.ID)

	require.Len(t, issue.Creators, 2)
	assert.Equal(t, "artist, cover", issue.Creators[1].Roles)
}

func TestIssueAllowsEmptyName(t *testing.T) {
	issue := BasicIssue{
		ID:     42,
		APIURL: "https://comicvine.gamespot.com/api/issue/4000-42/",
	}
	assert.NoError(t, issue.validate())
}

func TestCharacterDecode(t *testing.T) {
	const fixture = `{
		"aliases": "Kal-El\nMan of Steel",
		"api_detail_url": "https://comicvine.gamespot.com/api/character/4005-1807/",
		"birth": null,
		"count_of_issue_appearances": 15000,
		"date_added": "2008-06-06 11:27:37",
		"date_last_updated": "2024-01-01 00:00:00",
		"gender": 1,
		"id": 1807,
		"name": "Superman",
		"real_name": "Clark Kent",
		"site_detail_url": "https://comicvine.gamespot.com/superman/4005-1807/"
	}`

	var character BasicCharacter
	require.NoError(t, json.Unmarshal([]byte(fixture), &character))
	require.NoError(t, character.validate())

	assert.Equal(t, "Superman", character.Name)
	assert.Equal(t, "Clark Kent", character.RealName)
	assert.Equal(t, 15000, character.IssueCount)
	assert.Equal(t, []string{"Kal-El", "Man of Steel"}, character.AliasList())
	assert.True(t, character.DateOfBirth.IsZero())
}

func TestTeamDecodeMisspelledCountKey(t *testing.T) {
	// The API spells the appearance count key with three s's for teams,
	// story arcs, concepts and creators.
	const fixture = `{
		"api_detail_url": "https://comicvine.gamespot.com/api/team/4060-55766/",
		"count_of_isssue_appearances": 312,
		"id": 55766,
		"name": "Teen Titans",
		"site_detail_url": "https://comicvine.gamespot.com/teen-titans/4060-55766/"
	}`

	var team BasicTeam
	require.NoError(t, json.Unmarshal([]byte(fixture), &team))
	require.NoError(t, team.validate())
	assert.Equal(t, 312, team.IssueCount)
}
