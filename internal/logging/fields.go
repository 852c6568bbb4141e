package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for pipeline run identifiers.
	FieldRunID = "run_id"
	// FieldStage is the standardized structured logging key for pipeline stage names.
	FieldStage = "stage"
	// FieldTranche is the standardized structured logging key for tranche file names.
	FieldTranche = "tranche"
	// FieldCategory is the standardized structured logging key for QA and audit category names.
	FieldCategory = "category"
	// FieldTerm is the standardized structured logging key for dictionary headwords.
	FieldTerm = "term"
	// FieldScore is the standardized structured logging key for numeric scores.
	FieldScore = "score"
	// FieldAlert flags warnings or anomalies that should stand out in structured logs.
	FieldAlert = "alert"
)
