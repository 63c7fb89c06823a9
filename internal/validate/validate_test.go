// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/inventory-engine/pkg/types"
)

func TestHostname(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"switch-01", true},
		{"ROUTER-CORE", true},
		{"a", true},
		{"9", true},
		{"a-b-c-1", true},
		{"  switch-01  ", true},
		{"sw_01", false},
		{"", false},
		{"   ", false},
		{"-switch", false},
		{"switch-", false},
		{"sw.01", false},
		{"core switch", false},
	}

	for _, tt := range tests {
		if got := Hostname(tt.in); got != tt.want {
			t.Errorf("Hostname(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIPv4(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"10.0.1.1", true},
		{"192.168.1.1", true},
		{"0.0.0.0", true},
		{"255.255.255.255", true},
		{"010.001.001.001", true},
		{" 10.0.1.1 ", true},
		{"256.1.1.1", false},
		{"10.0.1", false},
		{"10.0.1.1.1", false},
		{"NOT_ASSIGNED", false},
		{"10.0.1.x", false},
		{"", false},
		{"1000.0.0.1", false},
	}

	for _, tt := range tests {
		if got := IPv4(tt.in); got != tt.want {
			t.Errorf("IPv4(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name       string
		rec        types.Record
		wantValid  bool
		wantErrors []string
	}{
		{
			name: "clean row",
			rec: types.Record{
				"hostname": "Switch-01", "ip_address": "10.0.1.1",
				"device_type": "sw", "location": "Bldg A",
			},
			wantValid: true,
		},
		{
			name: "alias column names",
			rec: types.Record{
				"name": "fw-main", "ip": "10.0.0.254",
				"type": "FW", "loc": "DC",
			},
			wantValid: true,
		},
		{
			name: "missing ip only",
			rec: types.Record{
				"hostname": "switch-01", "device_type": "switch", "location": "Bldg A",
			},
			wantValid:  false,
			wantErrors: []string{"Missing IP address"},
		},
		{
			name:      "everything missing",
			rec:       types.Record{},
			wantValid: false,
			wantErrors: []string{
				"Missing hostname", "Missing IP address",
				"Missing device type", "Missing location",
			},
		},
		{
			name: "bad hostname and ip formats",
			rec: types.Record{
				"hostname": "sw.01", "ip_address": "256.1.1.1",
				"device_type": "sw", "location": "dc",
			},
			wantValid: false,
			wantErrors: []string{
				"Invalid hostname format: 'sw.01'",
				"Invalid IP address: '256.1.1.1'",
			},
		},
		{
			name: "whitespace-only fields count as missing",
			rec: types.Record{
				"hostname": "  ", "ip_address": "10.0.1.1",
				"device_type": "sw", "location": "dc",
			},
			wantValid:  false,
			wantErrors: []string{"Missing hostname"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Row(2, tt.rec)

			if out.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (errors: %v)", out.Valid, tt.wantValid, out.Errors)
			}
			if len(out.Errors) != len(tt.wantErrors) {
				t.Fatalf("Errors = %v, want %v", out.Errors, tt.wantErrors)
			}
			for i, want := range tt.wantErrors {
				if out.Errors[i] != want {
					t.Errorf("Errors[%d] = %q, want %q", i, out.Errors[i], want)
				}
			}
			if tt.wantValid && out.Cleaned == nil {
				t.Error("valid row should carry a cleaned record")
			}
			if !tt.wantValid && out.Cleaned != nil {
				t.Error("invalid row should not carry a cleaned record")
			}
		})
	}
}

func TestRowCleanedRecord(t *testing.T) {
	rec := types.Record{
		"hostname": "Switch-01", "ip": "10.0.1.1",
		"type": "SW", "loc": "Bldg A",
	}
	out := Row(2, rec)
	if !out.Valid {
		t.Fatalf("row invalid: %v", out.Errors)
	}

	want := types.Record{
		"hostname":    "switch-01",
		"ip_address":  "10.0.1.1",
		"device_type": "switch",
		"location":    "building-a",
	}
	for key, wantVal := range want {
		if out.Cleaned[key] != wantVal {
			t.Errorf("Cleaned[%q] = %q, want %q", key, out.Cleaned[key], wantVal)
		}
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devices_messy.csv")
	content := "hostname,ip_address,device_type,location\n" +
		"Switch-01,10.0.1.1,sw,Bldg A\n" +
		"router-core,NOT_ASSIGNED,rtr,DC\n" +
		",10.0.1.3,switch,Building B\n" +
		"fw-main,10.0.0.254,fw,Data Center\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	cleaned, outcomes, err := File(path, &buf)
	if err != nil {
		t.Fatalf("File: %v", err)
	}

	if len(outcomes) != 4 {
		t.Fatalf("got %d outcomes, want 4", len(outcomes))
	}
	if len(cleaned) != 2 {
		t.Fatalf("got %d cleaned records, want 2", len(cleaned))
	}

	// Row numbers start at 2: the header is row 1.
	if outcomes[0].Row != 2 {
		t.Errorf("first outcome row = %d, want 2", outcomes[0].Row)
	}
	if outcomes[1].Valid {
		t.Error("row 3 should fail on its IP address")
	}
	if want := "Invalid IP address: 'NOT_ASSIGNED'"; outcomes[1].Errors[0] != want {
		t.Errorf("row 3 error = %q, want %q", outcomes[1].Errors[0], want)
	}
	if outcomes[2].Valid {
		t.Error("row 4 should fail on its missing hostname")
	}

	if cleaned[0]["hostname"] != "switch-01" {
		t.Errorf("cleaned hostname = %q, want %q", cleaned[0]["hostname"], "switch-01")
	}
	if cleaned[1]["location"] != "data-center" {
		t.Errorf("cleaned location = %q, want %q", cleaned[1]["location"], "data-center")
	}

	output := buf.String()
	if !strings.Contains(output, "Validation summary: 2 valid, 2 invalid (total: 4)") {
		t.Errorf("summary line missing from output:\n%s", output)
	}
}

func TestFileMissingInput(t *testing.T) {
	var buf strings.Builder
	if _, _, err := File(filepath.Join(t.TempDir(), "nope.csv"), &buf); err == nil {
		t.Error("expected error for missing input file")
	}
}
