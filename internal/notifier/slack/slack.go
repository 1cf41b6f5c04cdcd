package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-ledger/internal/metrics"
	"github.com/mauv0809/tennis-ledger/internal/notifier"
	"github.com/mauv0809/tennis-ledger/internal/stats"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
	"github.com/mauv0809/tennis-ledger/internal/view"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// maxStandings caps the standings message to keep it readable.
const maxStandings = 10

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier. Without a token or a channel every
// message is only logged, as if it were a dry run.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	n := &Notifier{
		channelID: channelID,
		metrics:   metrics,
	}
	if token != "" && channelID != "" {
		n.api = slack.New(token)
	}
	return n
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, fallback string, dryRun bool) (string, string, error) {
	if dryRun || s.api == nil {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionText(fallback, false),
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendScheduleNotification(schedule tennis.Schedule, dryRun bool) error {
	msg := s.formatScheduleNotification(schedule)
	_, _, err := s.sendMessage(msg, "New session planned for "+schedule.Date.Format(tennis.DateLayout), dryRun)
	return err
}

func (s *Notifier) SendResultNotification(match tennis.Match, dryRun bool) error {
	msg := s.formatResultNotification(match)
	_, _, err := s.sendMessage(msg, "Match result: "+view.MatchWinnerLabel(match), dryRun)
	return err
}

func (s *Notifier) SendShareSummary(summary string, dryRun bool) error {
	msg := s.formatShareSummary(summary)
	_, _, err := s.sendMessage(msg, summary, dryRun)
	return err
}

func (s *Notifier) SendStandings(standings []stats.PlayerStanding, dryRun bool) error {
	msg := s.formatStandings(standings)
	_, _, err := s.sendMessage(msg, "Club standings", dryRun)
	return err
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject("plain_text", text, true, false)
}

// formatScheduleNotification announces a planned session using Block Kit.
func (s *Notifier) formatScheduleNotification(schedule tennis.Schedule) slack.Message {
	blocks := make([]slack.Block, 0)
	blocks = append(blocks, slack.NewHeaderBlock(plainText(":calendar: New session planned :tennis:")))

	details := "Date: " + schedule.Date.Format("Monday 02 Jan 2006")
	if schedule.Status == tennis.ScheduleStatusCancelled {
		details += " (cancelled)"
	}
	blocks = append(blocks, slack.NewSectionBlock(plainText(details), nil, nil))

	if len(schedule.Players) > 0 {
		names := make([]string, 0, len(schedule.Players))
		for _, p := range schedule.Players {
			names = append(names, "• "+p.Name)
		}
		blocks = append(blocks, slack.NewSectionBlock(plainText("Players:\n"+strings.Join(names, "\n")), nil, nil))
	}
	if schedule.Notes != "" {
		blocks = append(blocks, slack.NewContextBlock("", plainText(schedule.Notes)))
	}
	return slack.NewBlockMessage(blocks...)
}

// formatResultNotification creates the Slack message for a recorded match using Block Kit.
func (s *Notifier) formatResultNotification(match tennis.Match) slack.Message {
	blocks := make([]slack.Block, 0)
	blocks = append(blocks, slack.NewHeaderBlock(plainText(":tennis: Match finished! :tennis:")))

	details := match.Date.Format(view.DateTimeLayout)
	if match.CourtName != "" {
		details = fmt.Sprintf("%s at %s", match.CourtName, details)
	}
	details += " (" + view.DurationLabel(match.Duration) + ")"
	blocks = append(blocks, slack.NewSectionBlock(plainText(details), nil, nil))

	teams := []*slack.TextBlockObject{
		plainText("Team A\n" + view.TeamAName(match)),
		plainText("Team B\n" + view.TeamBName(match)),
	}
	resultText := "Result: " + view.DrawLabel
	if match.Result != tennis.ResultDraw {
		resultText = fmt.Sprintf("Result: %s won! :trophy:", view.MatchWinnerLabel(match))
	}
	blocks = append(blocks, slack.NewSectionBlock(plainText(resultText), teams, nil))

	if score := view.MatchScore(match); score != "" {
		blocks = append(blocks, slack.NewContextBlock("", plainText("Score: "+score)))
	}
	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatShareSummary(summary string) slack.Message {
	blocks := make([]slack.Block, 0)
	blocks = append(blocks, slack.NewHeaderBlock(plainText(":bar_chart: Club summary")))
	blocks = append(blocks, slack.NewSectionBlock(plainText(summary), nil, nil))
	return slack.NewBlockMessage(blocks...)
}

// formatStandings creates a Slack message to display the standings table.
func (s *Notifier) formatStandings(standings []stats.PlayerStanding) slack.Message {
	blocks := make([]slack.Block, 0)
	blocks = append(blocks, slack.NewHeaderBlock(plainText(":trophy: Club standings :trophy:")))

	if len(standings) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(plainText("No players yet. Go play some matches!"), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, st := range standings {
		if i == maxStandings {
			break
		}
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = ":first_place_medal: "
		case 2:
			medal = ":second_place_medal: "
		case 3:
			medal = ":third_place_medal: "
		}
		line := fmt.Sprintf("%d. %s%s\n> Win %%: %.1f%% (%d/%d) | Time on court: %s",
			rank, medal, st.PlayerName, st.WinPercentage, st.MatchesWon, st.MatchesPlayed, view.DurationLabel(st.TotalDuration))
		blocks = append(blocks, slack.NewSectionBlock(plainText(line), nil, nil))
	}
	return slack.NewBlockMessage(blocks...)
}
