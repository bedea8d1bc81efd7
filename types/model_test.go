package types

import (
	"testing"
)

func TestPriceFloat(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "String zero", raw: `"0"`, want: 0},
		{name: "Number zero", raw: `0`, want: 0},
		{name: "Decimal string zero", raw: `"0.0"`, want: 0},
		{name: "Padded string", raw: `" 0 "`, want: 0},
		{name: "Negative zero", raw: `"-0"`, want: 0},
		{name: "Non-zero string", raw: `"0.000001"`, want: 0.000001},
		{name: "Non-zero number", raw: `1.5`, want: 1.5},
		{name: "Boolean false", raw: `false`, want: 0},
		{name: "Boolean true", raw: `true`, want: 1},
		{name: "Underflow rounds to zero", raw: `"1e-400"`, want: 0},
		{name: "Underscore digits", raw: `"0_0"`, want: 0},
		{name: "Overflow", raw: `"1e400"`, wantErr: true},
		{name: "Hex without exponent", raw: `"0x0"`, wantErr: true},
		{name: "Non-numeric string", raw: `"free"`, wantErr: true},
		{name: "Empty string", raw: `""`, wantErr: true},
		{name: "Null", raw: `null`, wantErr: true},
		{name: "Missing", raw: ``, wantErr: true},
		{name: "Object", raw: `{"usd":0}`, wantErr: true},
		{name: "Array", raw: `[0]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Price(tt.raw).Float()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDecodeModel(t *testing.T) {
	t.Run("Complete record", func(t *testing.T) {
		m, err := DecodeModel([]byte(`{"id":"a","name":"Alpha","context_length":1000,"pricing":{"prompt":"0","completion":0}}`))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if m.ID != "a" || m.Name != "Alpha" || m.ContextLength != "1000" {
			t.Errorf("Unexpected record: id=%s name=%s ctx=%s", m.ID, m.Name, m.ContextLength)
		}
		free, err := m.IsFree()
		if err != nil || !free {
			t.Errorf("Expected free model, got free=%v err=%v", free, err)
		}
	})

	missing := map[string]string{
		"id":             `{"name":"Alpha","context_length":1000,"pricing":{"prompt":"0","completion":"0"}}`,
		"name":           `{"id":"a","context_length":1000,"pricing":{"prompt":"0","completion":"0"}}`,
		"context_length": `{"id":"a","name":"Alpha","pricing":{"prompt":"0","completion":"0"}}`,
		"pricing":        `{"id":"a","name":"Alpha","context_length":1000}`,
	}
	for field, raw := range missing {
		t.Run("Missing "+field, func(t *testing.T) {
			if _, err := DecodeModel([]byte(raw)); err == nil {
				t.Errorf("Expected error when %s is missing", field)
			}
		})
	}

	t.Run("Not an object", func(t *testing.T) {
		if _, err := DecodeModel([]byte(`"a"`)); err == nil {
			t.Error("Expected error for non-object record")
		}
	})

	t.Run("Pricing is not an object", func(t *testing.T) {
		if _, err := DecodeModel([]byte(`{"id":"a","name":"Alpha","context_length":1,"pricing":"free"}`)); err == nil {
			t.Error("Expected error for string pricing")
		}
	})

	t.Run("Null pricing", func(t *testing.T) {
		if _, err := DecodeModel([]byte(`{"id":"a","name":"Alpha","context_length":1,"pricing":null}`)); err == nil {
			t.Error("Expected error for null pricing")
		}
	})

	passthrough := []struct {
		name     string
		raw      string
		wantID   string
		wantName string
		wantCtx  string
	}{
		{
			name:     "Null context length",
			raw:      `{"id":"a","name":"Alpha","context_length":null,"pricing":{}}`,
			wantID:   "a",
			wantName: "Alpha",
			wantCtx:  "null",
		},
		{
			name:     "Float context length",
			raw:      `{"id":"a","name":"Alpha","context_length":1000.0,"pricing":{}}`,
			wantID:   "a",
			wantName: "Alpha",
			wantCtx:  "1000.0",
		},
		{
			name:     "String context length",
			raw:      `{"id":"a","name":"Alpha","context_length":"big","pricing":{}}`,
			wantID:   "a",
			wantName: "Alpha",
			wantCtx:  "big",
		},
		{
			name:     "Numeric id and null name",
			raw:      `{"id":7,"name":null,"context_length":1,"pricing":{}}`,
			wantID:   "7",
			wantName: "null",
			wantCtx:  "1",
		},
	}
	for _, tt := range passthrough {
		t.Run(tt.name, func(t *testing.T) {
			m, err := DecodeModel([]byte(tt.raw))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if m.ID != tt.wantID || m.Name != tt.wantName || m.ContextLength != tt.wantCtx {
				t.Errorf("Expected id=%s name=%s ctx=%s, got id=%s name=%s ctx=%s",
					tt.wantID, tt.wantName, tt.wantCtx, m.ID, m.Name, m.ContextLength)
			}
		})
	}
}

func TestIsFreeMissingPrice(t *testing.T) {
	m, err := DecodeModel([]byte(`{"id":"a","name":"Alpha","context_length":1,"pricing":{"prompt":"0"}}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := m.IsFree(); err == nil {
		t.Error("Expected error when pricing.completion is missing")
	}
}

func TestDecodeModelList(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLen int
		wantErr bool
	}{
		{name: "Two records", body: `{"data":[{"id":"a"},{"id":"b"}]}`, wantLen: 2},
		{name: "Empty data", body: `{"data":[]}`, wantLen: 0},
		{name: "Missing data", body: `{"models":[]}`, wantErr: true},
		{name: "Null data", body: `{"data":null}`, wantErr: true},
		{name: "Data is object", body: `{"data":{"id":"a"}}`, wantErr: true},
		{name: "Top level array", body: `[{"id":"a"}]`, wantErr: true},
		{name: "Malformed JSON", body: `{"data":[`, wantErr: true},
		{name: "HTML body", body: `<html></html>`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := DecodeModelList([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for body %s", tt.body)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(list.Data) != tt.wantLen {
				t.Errorf("Expected %d records, got %d", tt.wantLen, len(list.Data))
			}
		})
	}
}
