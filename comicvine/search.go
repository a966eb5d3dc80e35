package comicvine

import (
	"context"
	"net/url"
)

// The search endpoint pages with a page parameter and filters by resource
// type. Each method returns the basic form of its resource.

func searchResource[T any](ctx context.Context, c *Client, resource Resource, query string, opts *ListOptions) ([]T, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("resources", resource.String())
	return pageResource[T](ctx, c, "/search", params, opts.maxResults(c.maxResults))
}

// SearchPublishers searches publishers by name.
func (c *Client) SearchPublishers(ctx context.Context, query string, opts *ListOptions) ([]BasicPublisher, error) {
	return searchResource[BasicPublisher](ctx, c, ResourcePublisher, query, opts)
}

// SearchVolumes searches volumes by name.
func (c *Client) SearchVolumes(ctx context.Context, query string, opts *ListOptions) ([]BasicVolume, error) {
	return searchResource[BasicVolume](ctx, c, ResourceVolume, query, opts)
}

// SearchIssues searches issues by name.
func (c *Client) SearchIssues(ctx context.Context, query string, opts *ListOptions) ([]BasicIssue, error) {
	return searchResource[BasicIssue](ctx, c, ResourceIssue, query, opts)
}

// SearchCharacters searches characters by name.
func (c *Client) SearchCharacters(ctx context.Context, query string, opts *ListOptions) ([]BasicCharacter, error) {
	return searchResource[BasicCharacter](ctx, c, ResourceCharacter, query, opts)
}

// SearchCreators searches creators by name.
func (c *Client) SearchCreators(ctx context.Context, query string, opts *ListOptions) ([]BasicCreator, error) {
	return searchResource[BasicCreator](ctx, c, ResourceCreator, query, opts)
}

// SearchStoryArcs searches story arcs by name.
func (c *Client) SearchStoryArcs(ctx context.Context, query string, opts *ListOptions) ([]BasicStoryArc, error) {
	return searchResource[BasicStoryArc](ctx, c, ResourceStoryArc, query, opts)
}

// SearchTeams searches teams by name.
func (c *Client) SearchTeams(ctx context.Context, query string, opts *ListOptions) ([]BasicTeam, error) {
	return searchResource[BasicTeam](ctx, c, ResourceTeam, query, opts)
}

// SearchLocations searches locations by name.
func (c *Client) SearchLocations(ctx context.Context, query string, opts *ListOptions) ([]BasicLocation, error) {
	return searchResource[BasicLocation](ctx, c, ResourceLocation, query, opts)
}

// SearchConcepts searches concepts by name.
func (c *Client) SearchConcepts(ctx context.Context, query string, opts *ListOptions) ([]BasicConcept, error) {
	return searchResource[BasicConcept](ctx, c, ResourceConcept, query, opts)
}

// SearchPowers searches powers by name.
func (c *Client) SearchPowers(ctx context.Context, query string, opts *ListOptions) ([]BasicPower, error) {
	return searchResource[BasicPower](ctx, c, ResourcePower, query, opts)
}

// SearchOrigins searches origins by name.
func (c *Client) SearchOrigins(ctx context.Context, query string, opts *ListOptions) ([]BasicOrigin, error) {
	return searchResource[BasicOrigin](ctx, c, ResourceOrigin, query, opts)
}

// SearchItems searches items by name.
func (c *Client) SearchItems(ctx context.Context, query string, opts *ListOptions) ([]BasicItem, error) {
	return searchResource[BasicItem](ctx, c, ResourceItem, query, opts)
}
