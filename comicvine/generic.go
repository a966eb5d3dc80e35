package comicvine

import "regexp"

// Entry is a cross-reference stub pointing at another resource by id. Most
// detail responses embed lists of these instead of full resources.
type Entry struct {
	APIURL  string `json:"api_detail_url"`
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	SiteURL string `json:"site_detail_url"`
}

// CountEntry is an Entry with an appearance count.
type CountEntry struct {
	Entry
	Count int `json:"count"`
}

// IssueEntry is an Entry with an issue number.
type IssueEntry struct {
	Entry
	Number string `json:"issue_number"`
}

// CreatorEntry is an Entry with the creator's roles collected in a string.
type CreatorEntry struct {
	Entry
	Roles string `json:"role"`
}

// Image holds the urls for the different sizes of a resource's image.
type Image struct {
	Icon        string `json:"icon_url"`
	Medium      string `json:"medium_url"`
	Screen      string `json:"screen_url"`
	ScreenLarge string `json:"screen_large_url"`
	Small       string `json:"small_url"`
	Super       string `json:"super_url"`
	Thumbnail   string `json:"thumb_url"`
	Tiny        string `json:"tiny_url"`
	Original    string `json:"original_url"`
	Tags        string `json:"image_tags"`
}

// AssociatedImage is an additional image attached to an issue.
type AssociatedImage struct {
	URL     string `json:"original_url"`
	ID      int64  `json:"id"`
	Caption string `json:"caption"`
	Tags    string `json:"image_tags"`
}

var aliasSplitter = regexp.MustCompile(`[~\r\n]+`)

// splitAliases turns the API's alias blob into a list. Aliases arrive as a
// single string separated by "~", "\r" or "\n".
func splitAliases(aliases string) []string {
	if aliases == "" {
		return nil
	}
	var out []string
	for _, alias := range aliasSplitter.Split(aliases, -1) {
		if alias != "" {
			out = append(out, alias)
		}
	}
	return out
}
