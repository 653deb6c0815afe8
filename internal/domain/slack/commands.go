package slack

import (
	"fmt"
	"strconv"
	"strings"
)

type CommandType string

const (
	CmdStatus  CommandType = "status"
	CmdHistory CommandType = "history"
	CmdRun     CommandType = "run"
	CmdHelp    CommandType = "help"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 50
)

type Command struct {
	Type  CommandType
	Args  []string
	Raw   string
	Limit int
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
	}

	switch strings.ToLower(parts[0]) {
	case "status":
		cmd.Type = CmdStatus
	case "history", "ls":
		cmd.Type = CmdHistory
		cmd.Limit = DefaultHistoryLimit
		if len(cmd.Args) > 0 {
			limit, err := strconv.Atoi(cmd.Args[0])
			if err != nil || limit <= 0 {
				return nil, fmt.Errorf("history size must be a positive number, got %q", cmd.Args[0])
			}
			cmd.Limit = min(limit, MaxHistoryLimit)
		}
	case "run":
		cmd.Type = CmdRun
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

• ` + "`/doughnut status`" + ` - Show when the last round ran and what the next run will do
• ` + "`/doughnut history [n]`" + ` - List the latest n pairings (default 10)
• ` + "`/doughnut run`" + ` - Run the doughnut check for this channel now
• ` + "`/doughnut help`" + ` - Show this message

New rounds are matched every cycle, with a halfway check-in DM to every pair.`
}
