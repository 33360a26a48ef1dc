package models

const (
	CategoryCustomer   = "customer"
	CategoryInfluencer = "influencer"
	CategorySeller     = "seller"
)

// Video is a catalog entry. Videos are created out-of-band by an
// administrative surface; the service only ever reads them.
type Video struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	Slug        string `json:"slug,omitempty"`
}

// ValidCategory reports whether c names one of the three feed categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryCustomer, CategoryInfluencer, CategorySeller:
		return true
	}
	return false
}
