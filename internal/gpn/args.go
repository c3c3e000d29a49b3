package gpn

// GetAddressArgs contains parameters for the address lookup
type GetAddressArgs struct {
	ClientID int64  `json:"client_id" jsonschema:"required" jsonschema_description:"Numeric GPN client identifier"`
	Type     string `json:"type,omitempty" jsonschema_description:"Address type to select (e.g. billing, shipping); falls back to the default address when absent or unmatched"`
	Field    string `json:"field,omitempty" jsonschema_description:"Single field to return (e.g. postal_code, locality); full rendered address when absent"`
}

// GetAddressResult is the result of an address lookup
type GetAddressResult struct {
	Address   string   `json:"address"`
	IsDefault bool     `json:"is_default"`
	Types     []string `json:"types,omitempty"`
}

// ListAddressTypesArgs contains parameters for listing a client's addresses
type ListAddressTypesArgs struct {
	ClientID int64 `json:"client_id" jsonschema:"required" jsonschema_description:"Numeric GPN client identifier"`
}

// ListAddressTypesResult lists the addresses on record for a client
type ListAddressTypesResult struct {
	Addresses []AddressSummary `json:"addresses"`
	Found     bool             `json:"found"`
	Message   string           `json:"message,omitempty"`
}

// AddressSummary describes one address record without its full content
type AddressSummary struct {
	Types     []string `json:"types"`
	IsDefault bool     `json:"is_default"`
	Fields    []string `json:"fields,omitempty"`
}

// RenderAddressArgs contains parameters for the HTML render utility
type RenderAddressArgs struct {
	HTML string `json:"html" jsonschema:"required" jsonschema_description:"HTML fragment to flatten to plain text"`
}

// RenderAddressResult is the rendered plain text
type RenderAddressResult struct {
	Text string `json:"text"`
}
