// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import "testing"

func TestDeviceType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sw", "switch"},
		{"Switch", "switch"},
		{"RTR", "router"},
		{"router", "router"},
		{"FW", "firewall"},
		{"firewall", "firewall"},
		{"  sw  ", "switch"},
		{"unknown", "unknown"},
		{"Load Balancer", "load balancer"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DeviceType(tt.in); got != tt.want {
			t.Errorf("DeviceType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeviceTypeIdempotent(t *testing.T) {
	for _, in := range []string{"sw", "Switch", "rtr", "oddball"} {
		once := DeviceType(in)
		if twice := DeviceType(once); twice != once {
			t.Errorf("DeviceType(DeviceType(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bldg A", "building-a"},
		{"Building A", "building-a"},
		{"bldg b", "building-b"},
		{"BUILDING C", "building-c"},
		{"DC", "data-center"},
		{"Data Center", "data-center"},
		{"DataCenter", "data-center"},
		{"Remote Site 7", "remote-site-7"},
		{"warehouse", "warehouse"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Location(tt.in); got != tt.want {
			t.Errorf("Location(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHostname(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SW-01", "sw-01"},
		{"sw_01", "sw-01"},
		{"core switch 1", "core-switch-1"},
		{"  Router_Core  ", "router-core"},
		{"fw-main", "fw-main"},
	}

	for _, tt := range tests {
		if got := Hostname(tt.in); got != tt.want {
			t.Errorf("Hostname(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// CleanHostname and Hostname intentionally disagree on spaces; this
// pins the divergence so it is not unified by accident.
func TestCleanHostnameKeepsSpaces(t *testing.T) {
	tests := []struct {
		in        string
		wantClean string
		wantFull  string
	}{
		{"SW_01", "sw-01", "sw-01"},
		{"core sw 1", "core sw 1", "core-sw-1"},
		{"Router_Core", "router-core", "router-core"},
	}

	for _, tt := range tests {
		if got := CleanHostname(tt.in); got != tt.wantClean {
			t.Errorf("CleanHostname(%q) = %q, want %q", tt.in, got, tt.wantClean)
		}
		if got := Hostname(tt.in); got != tt.wantFull {
			t.Errorf("Hostname(%q) = %q, want %q", tt.in, got, tt.wantFull)
		}
	}
}
