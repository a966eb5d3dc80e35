package comicvine

import "fmt"

// Resource identifies a Comic Vine resource type. The numeric value is the
// type prefix Comic Vine uses to build globally unique detail ids
// (e.g. volume 18216 is addressed as 4050-18216).
type Resource int

// Resource type ids used by Comic Vine.
const (
	ResourceIssue     Resource = 4000
	ResourceCharacter Resource = 4005
	ResourcePublisher Resource = 4010
	ResourceConcept   Resource = 4015
	ResourceLocation  Resource = 4020
	ResourceOrigin    Resource = 4030
	ResourcePower     Resource = 4035
	ResourceCreator   Resource = 4040
	ResourceStoryArc  Resource = 4045
	ResourceVolume    Resource = 4050
	ResourceItem      Resource = 4055
	ResourceTeam      Resource = 4060
)

// String returns the resource name used in detail endpoints and in the
// "resources" parameter of the search endpoint. Creators are "person" and
// items are "object" on the wire.
func (r Resource) String() string {
	switch r {
	case ResourceIssue:
		return "issue"
	case ResourceCharacter:
		return "character"
	case ResourcePublisher:
		return "publisher"
	case ResourceConcept:
		return "concept"
	case ResourceLocation:
		return "location"
	case ResourceOrigin:
		return "origin"
	case ResourcePower:
		return "power"
	case ResourceCreator:
		return "person"
	case ResourceStoryArc:
		return "story_arc"
	case ResourceVolume:
		return "volume"
	case ResourceItem:
		return "object"
	case ResourceTeam:
		return "team"
	default:
		return "unknown"
	}
}

// ListPath returns the plural endpoint used for list requests.
func (r Resource) ListPath() string {
	switch r {
	case ResourceCreator:
		return "/people"
	case ResourceItem:
		return "/objects"
	case ResourceIssue:
		return "/issues"
	case ResourceCharacter:
		return "/characters"
	case ResourcePublisher:
		return "/publishers"
	case ResourceConcept:
		return "/concepts"
	case ResourceLocation:
		return "/locations"
	case ResourceOrigin:
		return "/origins"
	case ResourcePower:
		return "/powers"
	case ResourceStoryArc:
		return "/story_arcs"
	case ResourceVolume:
		return "/volumes"
	case ResourceTeam:
		return "/teams"
	default:
		return "/unknown"
	}
}

// DetailPath returns the endpoint for a single resource id.
func (r Resource) DetailPath(id int64) string {
	return fmt.Sprintf("/%s/%d-%d", r, int(r), id)
}
