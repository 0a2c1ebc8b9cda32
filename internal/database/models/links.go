package models

// Links holds the admin-configurable URLs shown as inline buttons on
// prediction replies. Both values are always non-empty; defaults are seeded
// at startup.
type Links struct {
	Affiliate string
	Contact   string
}
