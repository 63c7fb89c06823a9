package types

// CSVConfig holds shared settings for stages that write delimited output.
type CSVConfig struct {
	// Delimiter selects the output field separator: "comma", "tab", or
	// "pipe". Empty means comma.
	Delimiter string `json:"delimiter" yaml:"delimiter"`
}

// InspectConfig holds settings for the inspect stage.
type InspectConfig struct {
	// Location filters the listing to devices whose raw location field
	// equals this value. Empty disables the filter.
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}

// ValidateConfig holds settings for the validate stage.
type ValidateConfig struct {
	// Output is the path for the cleaned-rows CSV. Empty skips writing it.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Report is the path for the YAML validation report. Empty skips it.
	Report string `json:"report,omitempty" yaml:"report,omitempty"`
}

// CleanConfig holds settings for the clean stage.
type CleanConfig struct {
	CSVConfig `yaml:",inline"`

	// Output is the path for the cleaned inventory CSV.
	Output string `json:"output" yaml:"output"`
}

// SplitConfig holds settings for the split stage.
type SplitConfig struct {
	CSVConfig `yaml:",inline"`

	// OutputDir is the directory that receives one CSV per device type.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// ReportConfig holds settings for the report stage.
type ReportConfig struct {
	// Output is the path for the report file. Empty prints to stdout.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// CatalogConfig holds settings for the device catalog.
type CatalogConfig struct {
	// DatabaseDir is the directory holding the catalog SQLite database.
	DatabaseDir string `json:"database_dir" yaml:"database_dir"`

	// MaxResults is the default maximum number of query results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Inspect  InspectConfig  `json:"inspect" yaml:"inspect"`
	Validate ValidateConfig `json:"validate" yaml:"validate"`
	Clean    CleanConfig    `json:"clean" yaml:"clean"`
	Split    SplitConfig    `json:"split" yaml:"split"`
	Report   ReportConfig   `json:"report" yaml:"report"`
	Catalog  CatalogConfig  `json:"catalog" yaml:"catalog"`
}
