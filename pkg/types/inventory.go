// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Record is one parsed CSV row as a flat mapping of column name to raw
// field value. A key is present iff the input row carried a cell for
// that column; empty cells are present with an empty value.
type Record map[string]string

// Field identifies a logical inventory column, independent of the
// column name an exported file happens to use.
type Field int

const (
	FieldHostname Field = iota
	FieldIP
	FieldType
	FieldLocation
	FieldStatus
)

// fieldAliases lists the accepted column names per field. Lookup
// resolves to the first alias present in the record.
var fieldAliases = map[Field][]string{
	FieldHostname: {"hostname", "name"},
	FieldIP:       {"ip", "ip_address"},
	FieldType:     {"type", "device_type"},
	FieldLocation: {"loc", "location"},
	FieldStatus:   {"status"},
}

// canonicalNames maps each field to its column name in cleaned output.
var canonicalNames = map[Field]string{
	FieldHostname: "hostname",
	FieldIP:       "ip_address",
	FieldType:     "device_type",
	FieldLocation: "location",
	FieldStatus:   "status",
}

// String returns the canonical output column name for the field.
func (f Field) String() string {
	if name, ok := canonicalNames[f]; ok {
		return name
	}
	return "unknown"
}

// Aliases returns the accepted column names for the field, in lookup order.
func (f Field) Aliases() []string {
	return fieldAliases[f]
}

// Lookup returns the record's value for the first alias of f whose key
// is present, or "" when no alias matches. Presence is keyed on the
// column existing in the row, so an empty cell under a preferred alias
// shadows a later one.
func (r Record) Lookup(f Field) string {
	for _, alias := range fieldAliases[f] {
		if v, ok := r[alias]; ok {
			return v
		}
	}
	return ""
}

// Device is a normalized inventory entry derived from a Record. Its
// identity within a batch is the Hostname field, which holds the
// canonical (case-folded, hyphenated) form.
type Device struct {
	// Hostname is the normalized device hostname.
	Hostname string `json:"hostname" yaml:"hostname"`

	// IPAddress is the device management IP, kept as given.
	IPAddress string `json:"ip_address" yaml:"ip_address"`

	// DeviceType is the canonical device type (switch, router, firewall,
	// or the lower-cased raw value for unmapped types).
	DeviceType string `json:"device_type" yaml:"device_type"`

	// Location is the canonical hyphenated location name.
	Location string `json:"location" yaml:"location"`

	// Status is the lifecycle state. Records without one default to "active".
	Status string `json:"status" yaml:"status"`
}

// Record converts the device to a Record keyed by canonical column names.
func (d Device) Record() Record {
	return Record{
		"hostname":    d.Hostname,
		"ip_address":  d.IPAddress,
		"device_type": d.DeviceType,
		"location":    d.Location,
		"status":      d.Status,
	}
}
