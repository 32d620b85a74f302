package model

// CartLineItem is one entry in the cart. Identity is ID, but the cart does not
// enforce uniqueness: adding the same product twice yields two entries.
type CartLineItem struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Images []string `json:"images"`
}

// Thumbnail returns the first image of the item, or empty
func (c CartLineItem) Thumbnail() string {
	if len(c.Images) == 0 {
		return ""
	}
	return c.Images[0]
}
