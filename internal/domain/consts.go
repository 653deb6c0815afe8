package domain

// Run cadence defaults, in days.
const (
	DefaultDaysBetweenRuns = 14
	DefaultPromptDays      = DefaultDaysBetweenRuns / 2
)

// DateLayout is the ISO-8601 date format used for match dates.
const DateLayout = "2006-01-02"

// BotNameMarkers exclude the bot itself (and its older incarnations) from the roster.
var BotNameMarkers = []string{"donut", "doughnut"}

// Match strategies
const (
	StrategyWeighted = "weighted"
	StrategySimple   = "simple"
)

// History backends
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

const (
	MatchPreviewMessage  = ":doughnut: New doughnut round! :doughnut:"
	PromptPreviewMessage = ":doughnut: Half way! :doughnut:"
	PromptMessage        = "It's the halfway point, just checking in to ensure the session has been scheduled or has already happened!"
)
