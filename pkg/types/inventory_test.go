package types

import "testing"

func TestRecordLookup(t *testing.T) {
	tests := []struct {
		name  string
		rec   Record
		field Field
		want  string
	}{
		{"canonical name", Record{"hostname": "sw-01"}, FieldHostname, "sw-01"},
		{"alias name", Record{"name": "sw-01"}, FieldHostname, "sw-01"},
		{"preferred alias wins", Record{"ip": "10.0.0.1", "ip_address": "10.0.0.2"}, FieldIP, "10.0.0.1"},
		{"empty cell shadows later alias", Record{"ip": "", "ip_address": "10.0.0.2"}, FieldIP, ""},
		{"no alias present", Record{"other": "x"}, FieldLocation, ""},
		{"loc before location", Record{"loc": "Bldg A", "location": "Bldg B"}, FieldLocation, "Bldg A"},
		{"type before device_type", Record{"type": "sw", "device_type": "switch"}, FieldType, "sw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Lookup(tt.field); got != tt.want {
				t.Errorf("Lookup(%v) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestFieldString(t *testing.T) {
	if got := FieldIP.String(); got != "ip_address" {
		t.Errorf("FieldIP.String() = %q, want %q", got, "ip_address")
	}
	if got := Field(99).String(); got != "unknown" {
		t.Errorf("Field(99).String() = %q, want %q", got, "unknown")
	}
}

func TestDeviceRecord(t *testing.T) {
	d := Device{
		Hostname:   "switch-01",
		IPAddress:  "10.0.1.1",
		DeviceType: "switch",
		Location:   "building-a",
		Status:     "active",
	}
	rec := d.Record()

	for key, want := range map[string]string{
		"hostname":    "switch-01",
		"ip_address":  "10.0.1.1",
		"device_type": "switch",
		"location":    "building-a",
		"status":      "active",
	} {
		if rec[key] != want {
			t.Errorf("Record()[%q] = %q, want %q", key, rec[key], want)
		}
	}
}
