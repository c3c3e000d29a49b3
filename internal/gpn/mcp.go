package gpn

import (
	"context"
	"sort"

	"github.com/GlobalPhilatelicNetwork/GoogleSheet-Function-GetAdress/internal/address"
	"github.com/GlobalPhilatelicNetwork/GoogleSheet-Function-GetAdress/internal/htmltext"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// GetAddressMCP is the MCP wrapper for GetClientAddress
func (c *Client) GetAddressMCP(ctx context.Context, args GetAddressArgs) (GetAddressResult, error) {
	if err := ValidateClientID(args.ClientID); err != nil {
		return GetAddressResult{}, err
	}
	if err := ValidateFilter("type", args.Type); err != nil {
		return GetAddressResult{}, err
	}
	if err := ValidateFilter("field", args.Field); err != nil {
		return GetAddressResult{}, err
	}

	set, err := c.FetchAddresses(ctx, args.ClientID)
	if err != nil {
		return GetAddressResult{}, err
	}

	target := address.Select(set, args.Type)
	value, err := address.Resolve(target, address.DefaultOf(set), args.Field)
	if err != nil {
		return GetAddressResult{}, err
	}

	return GetAddressResult{
		Address:   value,
		IsDefault: target == address.DefaultOf(set),
		Types:     target.Types,
	}, nil
}

// ListAddressTypesMCP lists the addresses a client has on record, so callers
// can discover valid type filters before a lookup.
func (c *Client) ListAddressTypesMCP(ctx context.Context, args ListAddressTypesArgs) (ListAddressTypesResult, error) {
	if err := ValidateClientID(args.ClientID); err != nil {
		return ListAddressTypesResult{}, err
	}

	set, err := c.FetchAddresses(ctx, args.ClientID)
	if err != nil {
		if IsNotFound(err) {
			return ListAddressTypesResult{
				Found:   false,
				Message: err.Error(),
			}, nil
		}
		return ListAddressTypesResult{}, err
	}

	def := address.DefaultOf(set)
	summaries := make([]AddressSummary, 0, len(set))
	for _, rec := range set {
		summaries = append(summaries, AddressSummary{
			Types:     rec.Types,
			IsDefault: rec == def,
			Fields:    fieldNames(rec),
		})
	}

	return ListAddressTypesResult{
		Addresses: summaries,
		Found:     true,
	}, nil
}

// RenderAddressMCP is the MCP wrapper for the HTML-to-text renderer
func (c *Client) RenderAddressMCP(ctx context.Context, args RenderAddressArgs) (RenderAddressResult, error) {
	if err := ValidateRenderInput(args.HTML); err != nil {
		return RenderAddressResult{}, err
	}
	return RenderAddressResult{Text: htmltext.ToPlainText(args.HTML)}, nil
}

// fieldNames returns the sorted field keys of a record
func fieldNames(rec *address.Record) []string {
	if len(rec.Fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(rec.Fields))
	for name := range rec.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
