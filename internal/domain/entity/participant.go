package entity

// Participant is a channel member eligible for a doughnut.
// ID is the Slack user id and is the only identity key. Username is the Slack
// handle, which old history files used in place of the id.
type Participant struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Timezone    string `json:"timezone"`
}

func (p Participant) SameTimezone(other Participant) bool {
	return p.Timezone == other.Timezone
}
