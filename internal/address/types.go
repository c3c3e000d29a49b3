// Package address holds the GPN address data model and the selection rules
// for choosing which address, and which representation of it, to return.
package address

// Record is a single address entry as delivered by the GPN client API.
// Field values in the address map may be null upstream, which is why they
// are modeled as pointers.
type Record struct {
	Default  bool               `json:"default_address"`
	Types    []string           `json:"address_types"`
	Rendered string             `json:"rendered"`
	Fields   map[string]*string `json:"address"`
}

// Set is the ordered list of address records returned for one client.
// Order is taken as delivered by the API; at most one record carries the
// default flag, and when none does the first record acts as the default.
type Set []*Record

// Envelope is the GPN API response wrapper around the address list.
type Envelope struct {
	Data []*Record `json:"data"`
}
