package dataset

import "fmt"

// ValidationError reports generation invoked on empty or insufficient
// upstream input.
type ValidationError struct {
	Op     string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// ResourceError reports a missing or unreadable external resource: a source
// file, the store, or the query text.
type ResourceError struct {
	Stage string
	Path  string
	Err   error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// SchemaError reports a column set that does not match the registry entry
// for a table. A nil Want means the table is not in the registry at all.
type SchemaError struct {
	Table string
	Want  []string
	Got   []string
}

func (e *SchemaError) Error() string {
	if e.Want == nil {
		return fmt.Sprintf("table %s: not in schema registry", e.Table)
	}
	return fmt.Sprintf("table %s: columns %v do not match schema %v", e.Table, e.Got, e.Want)
}
