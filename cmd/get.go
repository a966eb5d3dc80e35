package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fourcolor/longbox/comicvine"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <resource> <id>",
	Short: "Fetch a single resource by id",
	Long: `Fetch a single resource by its Comic Vine id and print it as JSON.

Resources: publisher, volume, issue, character, creator, story-arc, team,
location, concept, power, origin, item.`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	resource, err := parseResource(args[0])
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", args[1], err)
	}

	ctx := context.Background()
	logger.Debug().Stringer("resource", resource).Int64("id", id).Msg("Fetching resource")

	var result any
	switch resource {
	case comicvine.ResourcePublisher:
		result, err = client.GetPublisher(ctx, id)
	case comicvine.ResourceVolume:
		result, err = client.GetVolume(ctx, id)
	case comicvine.ResourceIssue:
		result, err = client.GetIssue(ctx, id)
	case comicvine.ResourceCharacter:
		result, err = client.GetCharacter(ctx, id)
	case comicvine.ResourceCreator:
		result, err = client.GetCreator(ctx, id)
	case comicvine.ResourceStoryArc:
		result, err = client.GetStoryArc(ctx, id)
	case comicvine.ResourceTeam:
		result, err = client.GetTeam(ctx, id)
	case comicvine.ResourceLocation:
		result, err = client.GetLocation(ctx, id)
	case comicvine.ResourceConcept:
		result, err = client.GetConcept(ctx, id)
	case comicvine.ResourcePower:
		result, err = client.GetPower(ctx, id)
	case comicvine.ResourceOrigin:
		result, err = client.GetOrigin(ctx, id)
	case comicvine.ResourceItem:
		result, err = client.GetItem(ctx, id)
	}
	if err != nil {
		return err
	}

	return printJSON(result)
}

// parseResource maps a CLI resource name to its Resource value.
func parseResource(name string) (comicvine.Resource, error) {
	switch name {
	case "publisher":
		return comicvine.ResourcePublisher, nil
	case "volume":
		return comicvine.ResourceVolume, nil
	case "issue":
		return comicvine.ResourceIssue, nil
	case "character":
		return comicvine.ResourceCharacter, nil
	case "creator", "person":
		return comicvine.ResourceCreator, nil
	case "story-arc", "story_arc":
		return comicvine.ResourceStoryArc, nil
	case "team":
		return comicvine.ResourceTeam, nil
	case "location":
		return comicvine.ResourceLocation, nil
	case "concept":
		return comicvine.ResourceConcept, nil
	case "power":
		return comicvine.ResourcePower, nil
	case "origin":
		return comicvine.ResourceOrigin, nil
	case "item", "object":
		return comicvine.ResourceItem, nil
	default:
		return 0, fmt.Errorf("unknown resource type: %s", name)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
