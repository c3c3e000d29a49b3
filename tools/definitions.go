package tools

// AllTools contains all tool specifications for the GPN address MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	{
		Name:     "gpn_get_client_address",
		Method:   "GetAddress",
		Title:    "Get Client Address",
		Category: "lookup",
		Description: `Fetch a GPN client's address as plain text, or one field of it.

USE WHEN: User asks "what is client X's address", "get the shipping address for client X", "what is the postal code of client X".

NOT FOR: Discovering which address types a client has (use gpn_list_address_types first).

PARAMETERS:
- client_id: Numeric GPN client identifier (required)
- type: Address type such as "billing" or "shipping" (optional; unmatched or missing types fall back to the default address)
- field: Single field name such as "postal_code" or "locality" (optional; omit for the full rendered address)

RETURNS: The address string, the selected record's types, and whether it is the client's default address.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "gpn_list_address_types",
		Method:   "ListAddressTypes",
		Title:    "List Address Types",
		Category: "lookup",
		Description: `List the addresses a GPN client has on record, with their types and field names.

USE WHEN: User asks "what addresses does client X have", or before a typed lookup to find valid values for the 'type' parameter.

NOT FOR: Reading address content (use gpn_get_client_address).

PARAMETERS:
- client_id: Numeric GPN client identifier (required)

RETURNS: One summary per address: its types, whether it is the default, and the field names it carries.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "gpn_render_address",
		Method:   "RenderAddress",
		Title:    "Render Address HTML",
		Category: "render",
		Description: `Convert an HTML address fragment to plain text.

USE WHEN: User has raw rendered address HTML and wants the plain-text form, or wants to preview how an address will be flattened.

NOT FOR: Fetching addresses from the GPN API (use gpn_get_client_address).

PARAMETERS:
- html: HTML fragment (required)

RETURNS: Plain text with tags stripped, entities decoded, and whitespace normalized.`,
		ReadOnly:   true,
		Idempotent: true,
	},
}
