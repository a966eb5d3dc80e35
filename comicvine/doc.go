// Package comicvine provides a client for the Comic Vine REST API.
//
// The client exposes one Get and one List method per Comic Vine resource
// type (publishers, volumes, issues, characters, creators, story arcs,
// teams, locations, concepts, powers, origins and objects), plus typed
// search methods. Responses are decoded into plain structs and validated
// before they are returned.
//
// # Features
//
//   - Typed request methods and response schemas per resource
//   - Client-side rate limiting to stay inside the Comic Vine budgets
//   - Optional persistent response cache keyed by request signature
//   - Distinct error values for authentication, not-found, rate-limit
//     and malformed-response failures
//   - Context-aware operations for cancellation
//
// # Usage
//
//	client, err := comicvine.NewClient(apiKey, comicvine.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	volume, err := client.GetVolume(ctx, 18216)
//
//	volumes, err := client.ListVolumes(ctx, &comicvine.ListOptions{
//	    Filter: map[string]string{"name": "The Walking Dead"},
//	})
package comicvine
