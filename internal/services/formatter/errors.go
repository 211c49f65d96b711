package formatter

// FormatterError is a custom error type for formatting errors
type FormatterError string

// Error implements the error interface
func (e FormatterError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEmptyStandings FormatterError = "no standings to show"
	ErrNilInput       FormatterError = "input cannot be nil"
)
