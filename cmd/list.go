package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fourcolor/longbox/comicvine"
	"github.com/fourcolor/longbox/filter"
)

var (
	serverFilter string
	matchExpr    string
	sortField    string
	limit        int
	asJSON       bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <resource>",
	Short: "List resources matching filter criteria",
	Long: `List resources of one type. --filter passes field:value pairs to the
API; --match evaluates an expression against each returned row, e.g.:

  longbox list volume --filter name:Invincible --match 'StartYear >= 2003'`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&serverFilter, "filter", "f", "", "server-side filter, comma-separated field:value pairs")
	listCmd.Flags().StringVarP(&matchExpr, "match", "m", "", "client-side match expression")
	listCmd.Flags().StringVarP(&sortField, "sort", "s", "", "sort expression, e.g. name:asc")
	listCmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum number of results")
	listCmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	resource, err := parseResource(args[0])
	if err != nil {
		return err
	}

	opts := &comicvine.ListOptions{
		Sort:       sortField,
		MaxResults: limit,
	}
	if serverFilter != "" {
		opts.Filter, err = parseFilterPairs(serverFilter)
		if err != nil {
			return err
		}
	}

	ctx := context.Background()
	rows, err := fetchRows(ctx, resource, opts)
	if err != nil {
		return err
	}

	if matchExpr != "" {
		rows, err = matchRows(rows, matchExpr)
		if err != nil {
			return err
		}
	}

	return printRows(rows)
}

// fetchRows runs the list call for one resource type.
func fetchRows(ctx context.Context, resource comicvine.Resource, opts *comicvine.ListOptions) ([]any, error) {
	switch resource {
	case comicvine.ResourcePublisher:
		return toRows(client.ListPublishers(ctx, opts))
	case comicvine.ResourceVolume:
		return toRows(client.ListVolumes(ctx, opts))
	case comicvine.ResourceIssue:
		return toRows(client.ListIssues(ctx, opts))
	case comicvine.ResourceCharacter:
		return toRows(client.ListCharacters(ctx, opts))
	case comicvine.ResourceCreator:
		return toRows(client.ListCreators(ctx, opts))
	case comicvine.ResourceStoryArc:
		return toRows(client.ListStoryArcs(ctx, opts))
	case comicvine.ResourceTeam:
		return toRows(client.ListTeams(ctx, opts))
	case comicvine.ResourceLocation:
		return toRows(client.ListLocations(ctx, opts))
	case comicvine.ResourceConcept:
		return toRows(client.ListConcepts(ctx, opts))
	case comicvine.ResourcePower:
		return toRows(client.ListPowers(ctx, opts))
	case comicvine.ResourceOrigin:
		return toRows(client.ListOrigins(ctx, opts))
	case comicvine.ResourceItem:
		return toRows(client.ListItems(ctx, opts))
	default:
		return nil, fmt.Errorf("unknown resource type: %s", resource)
	}
}

func toRows[T any](items []T, err error) ([]any, error) {
	if err != nil {
		return nil, err
	}
	rows := make([]any, len(items))
	for i, item := range items {
		rows[i] = item
	}
	return rows, nil
}

// matchRows keeps the rows whose flattened fields satisfy the expression.
func matchRows(rows []any, expression string) ([]any, error) {
	f, err := filter.Compile(expression)
	if err != nil {
		return nil, err
	}

	var kept []any
	for _, row := range rows {
		env, err := rowEnv(row)
		if err != nil {
			return nil, err
		}
		ok, err := f.Match(env)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, row)
		}
	}
	logger.Debug().Int("in", len(rows)).Int("out", len(kept)).Str("match", expression).Msg("Applied match expression")
	return kept, nil
}

// rowEnv exposes a row's exported fields as a flat expression environment.
func rowEnv(row any) (map[string]any, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}
	var env map[string]any
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	// JSON round-tripping yields wire names; re-marshal through a generic
	// map keyed by Go field names would lose types, so expose both forms.
	flat := make(map[string]any, len(env)*2)
	for key, value := range env {
		flat[key] = value
		flat[exportedName(key)] = value
	}
	return flat, nil
}

// exportedName converts a snake_case wire name to the Go field casing used
// in match expressions (start_year -> StartYear).
func exportedName(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "")
}

// parseFilterPairs parses "field:value,field:value" into a filter map.
func parseFilterPairs(raw string) (map[string]string, error) {
	pairs := strings.Split(raw, ",")
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		field, value, found := strings.Cut(pair, ":")
		if !found || field == "" || value == "" {
			return nil, fmt.Errorf("invalid filter pair %q (want field:value)", pair)
		}
		out[strings.TrimSpace(field)] = strings.TrimSpace(value)
	}
	return out, nil
}

// printRows prints one line per row, or the full rows as JSON.
func printRows(rows []any) error {
	if asJSON {
		return printJSON(rows)
	}

	if len(rows) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Printf("\nFound %d results:\n", len(rows))
	fmt.Println(strings.Repeat("-", 60))
	for _, row := range rows {
		env, err := rowEnv(row)
		if err != nil {
			return err
		}
		name, _ := env["name"].(string)
		id, _ := env["id"].(float64)
		fmt.Printf("• %s (%d)\n", name, int64(id))
	}
	return nil
}
