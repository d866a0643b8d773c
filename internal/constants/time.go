package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimestampFormat is used for created_at and joined_at fields
	TimestampFormat = "2006-01-02T15:04:05Z07:00"
)
