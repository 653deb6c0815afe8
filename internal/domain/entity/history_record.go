package entity

// HistoryRecord is the persisted, tabular shape of a PastPairing.
// MatchDate is kept as the raw ISO-8601 text so unreadable rows can be reported instead of dropped silently.
type HistoryRecord struct {
	Name1     string
	ID1       string
	Name2     string
	ID2       string
	MatchDate string
	Prompted  bool
}
