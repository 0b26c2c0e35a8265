package config

const (
	// DefaultDatabasePath is the default path for the verse database
	DefaultDatabasePath = "./scripture.db"

	// DefaultLanguage is assumed when a request names no language
	DefaultLanguage = "en"

	// SearchDefaultLimit is the page size when a search names no limit
	SearchDefaultLimit = 10

	// SearchMaxLimit caps the page size; larger values are clamped
	SearchMaxLimit = 100
)
