package repotypes

// RecordFilter narrows stored exception queries. Zero values mean the
// dimension is unconstrained.
type RecordFilter struct {
	ExceptionType string
	Level         string
	Limit         int
}
