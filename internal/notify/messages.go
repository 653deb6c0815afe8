package notify

import (
	"fmt"
	"strings"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
)

func mention(id string) string {
	return fmt.Sprintf("<@%s>", id)
}

func welcomeMessage(a, b string) string {
	return fmt.Sprintf("Hello %s and %s! Welcome to a new round of doughnuts! Please use this DM channel to set up time to connect!",
		mention(a), mention(b))
}

func organiserMessage(organiser string) string {
	return fmt.Sprintf("%s you have been selected to organise the meeting", mention(organiser))
}

func summaryMessage(round *entity.MatchRound) string {
	var sb strings.Builder
	sb.WriteString("The new round of pairings are in! You should have received a DM from _doughnut with your new doughnut partner. ")
	sb.WriteString("Please post any feedback here. (If there are an odd number of participants someone will get two matches)")
	for _, pair := range round.Pairs {
		sb.WriteString(fmt.Sprintf("\n%s and %s", mention(pair.A.ID), mention(pair.B.ID)))
	}
	sb.WriteString(fmt.Sprintf("\nThats %d donuts this time around!", len(round.Pairs)))
	return sb.String()
}
