package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fourcolor/longbox/comicvine"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <resource> <query>",
	Short: "Run a free-text search for one resource type",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum number of results")
	searchCmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	resource, err := parseResource(args[0])
	if err != nil {
		return err
	}
	query := strings.Join(args[1:], " ")

	opts := &comicvine.ListOptions{MaxResults: limit}
	ctx := context.Background()
	logger.Debug().Stringer("resource", resource).Str("query", query).Msg("Searching")

	var rows []any
	switch resource {
	case comicvine.ResourcePublisher:
		rows, err = toRows(client.SearchPublishers(ctx, query, opts))
	case comicvine.ResourceVolume:
		rows, err = toRows(client.SearchVolumes(ctx, query, opts))
	case comicvine.ResourceIssue:
		rows, err = toRows(client.SearchIssues(ctx, query, opts))
	case comicvine.ResourceCharacter:
		rows, err = toRows(client.SearchCharacters(ctx, query, opts))
	case comicvine.ResourceCreator:
		rows, err = toRows(client.SearchCreators(ctx, query, opts))
	case comicvine.ResourceStoryArc:
		rows, err = toRows(client.SearchStoryArcs(ctx, query, opts))
	case comicvine.ResourceTeam:
		rows, err = toRows(client.SearchTeams(ctx, query, opts))
	case comicvine.ResourceLocation:
		rows, err = toRows(client.SearchLocations(ctx, query, opts))
	case comicvine.ResourceConcept:
		rows, err = toRows(client.SearchConcepts(ctx, query, opts))
	case comicvine.ResourcePower:
		rows, err = toRows(client.SearchPowers(ctx, query, opts))
	case comicvine.ResourceOrigin:
		rows, err = toRows(client.SearchOrigins(ctx, query, opts))
	case comicvine.ResourceItem:
		rows, err = toRows(client.SearchItems(ctx, query, opts))
	default:
		return fmt.Errorf("unknown resource type: %s", resource)
	}
	if err != nil {
		return err
	}

	return printRows(rows)
}
