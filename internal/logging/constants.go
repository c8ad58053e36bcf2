package logging

// Field names shared by every component so log output can be filtered consistently.
const (
	FieldFile        = "file_path"
	FieldComponent   = "component"
	FieldCategory    = "category"
	FieldAmount      = "amount"
	FieldDescription = "description"
	FieldDate        = "date"
	FieldToken       = "token"
	FieldKeyword     = "keyword"
	FieldOperation   = "operation"
	FieldBackend     = "backend"
	FieldCount       = "count"
	FieldLine        = "line"
	FieldDelimiter   = "delimiter"
	FieldReason      = "reason"
)
