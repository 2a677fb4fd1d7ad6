package usecase

// DefaultActor is recorded as the acting user when a request does not
// carry one.
const DefaultActor = "local"

// Defaults applied when creating a company without explicit values.
const (
	DefaultSeriesCode        = "A"
	DefaultSeriesDescription = "Main series"
	DefaultFiscalYearStart   = "2024-01-01"
	DefaultFiscalYearEnd     = "2024-12-31"
)
