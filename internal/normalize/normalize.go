// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize maps raw inventory field values to canonical forms
// via fixed lookup tables. All functions are idempotent: normalizing an
// already-normalized value returns it unchanged.
package normalize

import "strings"

// deviceTypes maps type abbreviations to canonical device types.
var deviceTypes = map[string]string{
	"sw":       "switch",
	"switch":   "switch",
	"rtr":      "router",
	"router":   "router",
	"fw":       "firewall",
	"firewall": "firewall",
}

// locations maps location spellings to canonical hyphenated names.
var locations = map[string]string{
	"bldg a":      "building-a",
	"building a":  "building-a",
	"bldg b":      "building-b",
	"building b":  "building-b",
	"bldg c":      "building-c",
	"building c":  "building-c",
	"dc":          "data-center",
	"data center": "data-center",
	"datacenter":  "data-center",
}

// DeviceType case-folds and trims the value, then maps it through the
// abbreviation table. Unmapped values pass through lower-cased and
// trimmed.
func DeviceType(s string) string {
	n := strings.ToLower(strings.TrimSpace(s))
	if canonical, ok := deviceTypes[n]; ok {
		return canonical
	}
	return n
}

// Location case-folds and trims the value, then maps it through the
// location table. Unmapped values get internal spaces replaced with
// hyphens.
func Location(s string) string {
	n := strings.ToLower(strings.TrimSpace(s))
	if canonical, ok := locations[n]; ok {
		return canonical
	}
	return strings.ReplaceAll(n, " ", "-")
}

// Hostname canonicalizes a hostname for cleaned output: lower-case,
// trimmed, with underscores and spaces replaced by hyphens.
func Hostname(s string) string {
	n := strings.TrimSpace(strings.ToLower(s))
	n = strings.ReplaceAll(n, "_", "-")
	return strings.ReplaceAll(n, " ", "-")
}

// CleanHostname applies the lighter hostname cleanup used when
// validating rows: lower-case with underscores replaced by hyphens.
// Unlike Hostname, spaces are left in place. The two forms only differ
// on input that fails hostname validation.
func CleanHostname(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", "-")
}
