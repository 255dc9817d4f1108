package domain

// Category groups tasks for display.
// Fields are ordered to minimize memory padding.
type Category struct {
	Name      string `json:"name"`            // Name (required)
	Color     string `json:"color,omitempty"` // Display color (hex or name)
	ID        int    `json:"-"`               // Category ID (stored as map key, not in value)
	TaskCount int    `json:"taskCount"`       // Denormalized count, informational only
	Order     int    `json:"order"`           // Display ordering hint
}
