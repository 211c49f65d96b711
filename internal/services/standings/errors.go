package standings

// StandingsError is a custom error type for standings-related errors
type StandingsError string

// Error implements the error interface
func (e StandingsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidYear     StandingsError = "invalid year"
	ErrInvalidKind     StandingsError = "invalid standings kind"
	ErrDataUnavailable StandingsError = "no standings data for that season"
	ErrNilConfig       StandingsError = "config cannot be nil"
	ErrNilRepository   StandingsError = "standings repository cannot be nil"
	ErrNilClock        StandingsError = "clock cannot be nil"
)
