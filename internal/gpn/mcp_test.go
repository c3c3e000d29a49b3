package gpn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetAddressMCP(t *testing.T) {
	server := addressServer(t)
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	result, err := client.GetAddressMCP(context.Background(), GetAddressArgs{
		ClientID: 42,
		Type:     "shipping",
	})
	if err != nil {
		t.Fatalf("GetAddressMCP returned error: %v", err)
	}
	if result.Address != "Side St" {
		t.Errorf("Address = %q, want %q", result.Address, "Side St")
	}
	if result.IsDefault {
		t.Error("shipping address should not be the default")
	}
	if len(result.Types) != 1 || result.Types[0] != "shipping" {
		t.Errorf("Types = %v, want [shipping]", result.Types)
	}
}

func TestGetAddressMCP_DefaultFlag(t *testing.T) {
	server := addressServer(t)
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	result, err := client.GetAddressMCP(context.Background(), GetAddressArgs{ClientID: 42})
	if err != nil {
		t.Fatalf("GetAddressMCP returned error: %v", err)
	}
	if !result.IsDefault {
		t.Error("default lookup should flag the result as default")
	}
}

func TestGetAddressMCP_Validation(t *testing.T) {
	client := NewClient(testConfig("http://example.invalid"))

	tests := []struct {
		name string
		args GetAddressArgs
	}{
		{name: "missing client id", args: GetAddressArgs{}},
		{name: "negative client id", args: GetAddressArgs{ClientID: -1}},
		{name: "oversized type filter", args: GetAddressArgs{ClientID: 42, Type: string(make([]byte, MaxFilterLength+1))}},
		{name: "oversized field filter", args: GetAddressArgs{ClientID: 42, Field: string(make([]byte, MaxFilterLength+1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := client.GetAddressMCP(context.Background(), tt.args); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestListAddressTypesMCP(t *testing.T) {
	server := addressServer(t)
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	result, err := client.ListAddressTypesMCP(context.Background(), ListAddressTypesArgs{ClientID: 42})
	if err != nil {
		t.Fatalf("ListAddressTypesMCP returned error: %v", err)
	}
	if !result.Found {
		t.Fatal("expected Found=true")
	}
	if len(result.Addresses) != 2 {
		t.Fatalf("got %d addresses, want 2", len(result.Addresses))
	}
	if !result.Addresses[0].IsDefault || result.Addresses[1].IsDefault {
		t.Error("default flag should be on the first record only")
	}
	if len(result.Addresses[0].Fields) != 1 || result.Addresses[0].Fields[0] != "postal_code" {
		t.Errorf("Fields = %v, want [postal_code]", result.Addresses[0].Fields)
	}
}

func TestListAddressTypesMCP_NotFoundSoftens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	result, err := client.ListAddressTypesMCP(context.Background(), ListAddressTypesArgs{ClientID: 42})
	if err != nil {
		t.Fatalf("ListAddressTypesMCP returned error: %v", err)
	}
	if result.Found {
		t.Error("expected Found=false for a client without addresses")
	}
	if result.Message == "" {
		t.Error("expected explanatory message")
	}
}

func TestRenderAddressMCP(t *testing.T) {
	client := NewClient(testConfig("http://example.invalid"))

	result, err := client.RenderAddressMCP(context.Background(), RenderAddressArgs{
		HTML: "<div>Schmidt &amp; Sons<br>12345&nbsp;Berlin</div>",
	})
	if err != nil {
		t.Fatalf("RenderAddressMCP returned error: %v", err)
	}
	want := "Schmidt & Sons\n12345 Berlin"
	if result.Text != want {
		t.Errorf("Text = %q, want %q", result.Text, want)
	}
}
