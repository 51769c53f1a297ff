package utils

import "testing"

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient()
	if client == nil || client.Client == nil {
		t.Fatal("expected initialized resty client")
	}

	other := NewHTTPClient()
	if client.Client == other.Client {
		t.Error("expected independent client instances")
	}
}
