// Package models defines the core data structures for dashboard items
// and category ordering.
package models

// Item represents a single dashboard tile: a bookmarked link with display
// metadata and a floating-point position key used for drag-and-drop
// ordering. Order keys are only comparable between items that share a
// category.
type Item struct {
	// ID is the unique identifier for the item.
	ID string `json:"id"`
	// Name is the display name of the link.
	Name string `json:"name"`
	// URL is the link target.
	URL string `json:"url"`
	// Description holds optional free-form text shown under the name.
	Description string `json:"description"`
	// Icon is the name of the icon rendered for the item.
	Icon string `json:"icon"`
	// Category is the display group the item belongs to.
	Category string `json:"category"`
	// CategoryIcon is the icon rendered next to the category heading.
	CategoryIcon string `json:"categoryIcon"`
	// Username is an optional login hint displayed with the item.
	Username string `json:"username"`
	// SecretKey is opaque display text, not a cryptographic credential.
	SecretKey string `json:"secretKey"`
	// OrderIndex is the position key within the item's category.
	OrderIndex float64 `json:"orderIndex"`
	// IsAdminOnly hides the item from non-admin viewers when true.
	IsAdminOnly bool `json:"isAdminOnly"`
	// Size is a rendering hint ("small", "medium", "large").
	Size string `json:"size"`
}

// Defaults applied to optional item fields on create and import.
const (
	DefaultIcon         = "Link"
	DefaultCategory     = "Uncategorized"
	DefaultCategoryIcon = "Folder"
	DefaultSize         = "medium"
)

// CategoryOrder maps a category name to its integer position in the
// dashboard layout.
type CategoryOrder struct {
	// CategoryName is the unique category key.
	CategoryName string `json:"categoryName"`
	// OrderIndex is the position of the category, ascending.
	OrderIndex int `json:"orderIndex"`
}

// AuthPayload is the response body for a successful admin login or a
// token status check.
type AuthPayload struct {
	// Token is the static pre-shared admin token.
	Token string `json:"token"`
	// Role is always "admin"; there is exactly one privileged role.
	Role string `json:"role"`
	// Username is the configured admin username.
	Username string `json:"username"`
}
