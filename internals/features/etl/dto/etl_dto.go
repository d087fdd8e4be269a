package dto

// ValidationIssue level: "error" menggagalkan file, "warning" tidak.
type ValidationIssue struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type ValidationResult struct {
	FileName string            `json:"file_name"`
	FileKind string            `json:"file_kind"`
	RowCount int               `json:"row_count"`
	Columns  []string          `json:"columns"`
	Valid    bool              `json:"valid"`
	Issues   []ValidationIssue `json:"issues"`
}

// DataSourceInfo mendeskripsikan satu jenis import yang didukung.
type DataSourceInfo struct {
	Kind            string   `json:"kind"`
	Description     string   `json:"description"`
	RequiredColumns []string `json:"required_columns"`
	OptionalColumns []string `json:"optional_columns"`
	FileFormats     []string `json:"file_formats"`
}

type ProcessFileRequest struct {
	Kind     string `json:"kind" validate:"required"`
	FilePath string `json:"file_path" validate:"required"`
}
