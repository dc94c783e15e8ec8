// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Record is one semi-structured row from a source. Sources define their own
// field sets; the core never interprets individual fields.
type Record map[string]any

// ResultKind tags the shape of a source result.
type ResultKind string

const (
	// KindRecords is an ordered sequence of records, optionally tabular.
	KindRecords ResultKind = "records"
	// KindFields is a keyed mapping, e.g. per-station readings.
	KindFields ResultKind = "fields"
	// KindScalar is a single opaque value.
	KindScalar ResultKind = "scalar"
	// KindAbsent marks a source that returned nothing or failed.
	KindAbsent ResultKind = "absent"
)

// Result is the normalized value produced by one source task. Exactly one of
// Records, Fields, or Value is populated, per Kind.
type Result struct {
	Kind    ResultKind     `json:"kind" yaml:"kind"`
	Records []Record       `json:"records,omitempty" yaml:"records,omitempty"`
	Fields  map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
	Value   any            `json:"value,omitempty" yaml:"value,omitempty"`

	// Columns names the record fields when the record set is tabular
	// (every record shares one column set, e.g. buoy observations).
	Columns []string `json:"columns,omitempty" yaml:"columns,omitempty"`
}

// RecordsResult wraps a sequence of records.
func RecordsResult(records []Record) Result {
	return Result{Kind: KindRecords, Records: records}
}

// TabularResult wraps a sequence of records sharing a column set.
func TabularResult(records []Record, columns []string) Result {
	return Result{Kind: KindRecords, Records: records, Columns: columns}
}

// FieldsResult wraps a keyed mapping.
func FieldsResult(fields map[string]any) Result {
	return Result{Kind: KindFields, Fields: fields}
}

// ScalarResult wraps a single value.
func ScalarResult(v any) Result {
	return Result{Kind: KindScalar, Value: v}
}

// Absent is the result of a task that produced nothing.
func Absent() Result {
	return Result{Kind: KindAbsent}
}

// Present reports whether the result carries data.
func (r Result) Present() bool {
	return r.Kind != KindAbsent && r.Kind != ""
}

// Count returns the record count under the uniform convention: length for
// record sequences and mappings alike, 1 for a scalar, 0 when absent.
func (r Result) Count() int {
	switch r.Kind {
	case KindRecords:
		return len(r.Records)
	case KindFields:
		return len(r.Fields)
	case KindScalar:
		return 1
	default:
		return 0
	}
}
