package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sitewatch-dev/sitewatch/db"
	"github.com/sitewatch-dev/sitewatch/internal/models"
)

type DiscordWebhookField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type DiscordEmbed struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Color       int                   `json:"color"`
	Fields      []DiscordWebhookField `json:"fields"`
	Footer      *DiscordFooter        `json:"footer,omitempty"`
	Timestamp   string                `json:"timestamp"`
}

type DiscordFooter struct {
	Text string `json:"text"`
}

type DiscordWebhookRequest struct {
	Username string         `json:"username"`
	Embeds   []DiscordEmbed `json:"embeds"`
}

type SlackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

type SlackAttachment struct {
	Color     string       `json:"color"`
	Title     string       `json:"title"`
	Text      string       `json:"text"`
	Fields    []SlackField `json:"fields"`
	Footer    string       `json:"footer"`
	Timestamp int64        `json:"ts"`
}

type SlackWebhookRequest struct {
	Username    string            `json:"username"`
	IconEmoji   string            `json:"icon_emoji,omitempty"`
	Text        string            `json:"text"`
	Attachments []SlackAttachment `json:"attachments"`
}

const (
	ColorRed   = 16711680 // #FF0000 - Incident created
	ColorGreen = 65280    // #00FF00 - Incident resolved

	Username = "Sitewatch"
)

// SendIncidentCreatedNotification delivers incident-created webhooks to
// every channel configured on the site. Each delivery attempt is
// recorded as a Notification row.
func SendIncidentCreatedNotification(site models.Site, incident models.Incident) error {
	if site.DiscordWebhook != "" {
		err := sendDiscordIncidentCreated(site.DiscordWebhook, site, incident)
		recordNotification(incident.ID, "discord", incident.Title, err)

		if err != nil {
			return fmt.Errorf("discord: %w", err)
		}
	}

	if site.SlackWebhook != "" {
		err := sendSlackIncidentCreated(site.SlackWebhook, site, incident)
		recordNotification(incident.ID, "slack", incident.Title, err)

		if err != nil {
			return fmt.Errorf("slack: %w", err)
		}
	}

	return nil
}

// SendIncidentResolvedNotification delivers incident-resolved webhooks.
func SendIncidentResolvedNotification(site models.Site, incident models.Incident) error {
	if site.DiscordWebhook != "" {
		err := sendDiscordIncidentResolved(site.DiscordWebhook, site, incident)
		recordNotification(incident.ID, "discord", incident.Title, err)

		if err != nil {
			return fmt.Errorf("discord: %w", err)
		}
	}

	if site.SlackWebhook != "" {
		err := sendSlackIncidentResolved(site.SlackWebhook, site, incident)
		recordNotification(incident.ID, "slack", incident.Title, err)

		if err != nil {
			return fmt.Errorf("slack: %w", err)
		}
	}

	return nil
}

func recordNotification(incidentID uint, channel, message string, sendErr error) {
	status := "sent"

	if sendErr != nil {
		status = "failed"
	}

	now := time.Now()

	notification := models.Notification{
		IncidentID: incidentID,
		Channel:    channel,
		Status:     status,
		Message:    message,
		SentAt:     &now,
	}

	if err := db.DB.Create(&notification).Error; err != nil {
		log.Printf("Failed to record %s notification for incident %d: %v", channel, incidentID, err)
	}
}

func sendDiscordIncidentCreated(webhookURL string, site models.Site, incident models.Incident) error {
	startedAt := "Unknown"
	if incident.StartedAt != nil {
		startedAt = incident.StartedAt.Format("2006-01-02 15:04:05 UTC")
	}

	payload := DiscordWebhookRequest{
		Username: Username,
		Embeds: []DiscordEmbed{
			{
				Title:       "🚨 **MONITOR DOWN**",
				Description: fmt.Sprintf("A monitor on **%s** has gone down and requires attention.", site.Name),
				Color:       ColorRed,
				Fields: []DiscordWebhookField{
					{Name: "📊 Monitor", Value: incident.Monitor.UUID, Inline: true},
					{Name: "🏷️ Monitor Type", Value: incident.Monitor.Type, Inline: true},
					{Name: "⚠️ Status", Value: "**" + incident.Status + "**", Inline: true},
					{Name: "📝 Incident Title", Value: incident.Title, Inline: false},
					{Name: "📋 Description", Value: incident.Description, Inline: false},
					{Name: "⏰ Started At", Value: startedAt, Inline: true},
					{Name: "🔄 Check Interval", Value: fmt.Sprintf("%d seconds", incident.Monitor.CheckInterval), Inline: true},
				},
				Footer: &DiscordFooter{
					Text: fmt.Sprintf("Site: %s | Sitewatch", site.Name),
				},
				Timestamp: time.Now().Format(time.RFC3339),
			},
		},
	}

	return sendDiscordWebhook(webhookURL, payload)
}

func sendDiscordIncidentResolved(webhookURL string, site models.Site, incident models.Incident) error {
	startedAt := "Unknown"
	resolvedAt := "Unknown"
	duration := "Unknown"

	if incident.StartedAt != nil {
		startedAt = incident.StartedAt.Format("2006-01-02 15:04:05 UTC")
	}

	if incident.ResolvedAt != nil {
		resolvedAt = incident.ResolvedAt.Format("2006-01-02 15:04:05 UTC")
		if incident.StartedAt != nil {
			duration = incident.ResolvedAt.Sub(*incident.StartedAt).Round(time.Second).String()
		}
	}

	payload := DiscordWebhookRequest{
		Username: Username,
		Embeds: []DiscordEmbed{
			{
				Title:       "✅ **MONITOR RECOVERED**",
				Description: fmt.Sprintf("A monitor on **%s** is back to normal operation.", site.Name),
				Color:       ColorGreen,
				Fields: []DiscordWebhookField{
					{Name: "📊 Monitor", Value: incident.Monitor.UUID, Inline: true},
					{Name: "🏷️ Monitor Type", Value: incident.Monitor.Type, Inline: true},
					{Name: "✅ Status", Value: "**" + incident.Status + "**", Inline: true},
					{Name: "📝 Incident Title", Value: incident.Title, Inline: false},
					{Name: "⏰ Started At", Value: startedAt, Inline: true},
					{Name: "🏁 Resolved At", Value: resolvedAt, Inline: true},
					{Name: "⏱️ Duration", Value: duration, Inline: true},
				},
				Footer: &DiscordFooter{
					Text: fmt.Sprintf("Site: %s | Sitewatch", site.Name),
				},
				Timestamp: time.Now().Format(time.RFC3339),
			},
		},
	}

	return sendDiscordWebhook(webhookURL, payload)
}

func sendSlackIncidentCreated(webhookURL string, site models.Site, incident models.Incident) error {
	startedAt := "Unknown"
	if incident.StartedAt != nil {
		startedAt = incident.StartedAt.Format("2006-01-02 15:04:05 UTC")
	}

	payload := SlackWebhookRequest{
		Username:  Username,
		IconEmoji: ":rotating_light:",
		Text:      ":rotating_light: *MONITOR DOWN*",
		Attachments: []SlackAttachment{
			{
				Color: "danger",
				Title: fmt.Sprintf("Monitor '%s' has gone down", incident.Monitor.UUID),
				Text:  incident.Description,
				Fields: []SlackField{
					{Title: "Monitor", Value: incident.Monitor.UUID, Short: true},
					{Title: "Type", Value: incident.Monitor.Type, Short: true},
					{Title: "Status", Value: incident.Status, Short: true},
					{Title: "Interval", Value: fmt.Sprintf("%d seconds", incident.Monitor.CheckInterval), Short: true},
					{Title: "Incident Title", Value: incident.Title, Short: false},
					{Title: "Started At", Value: startedAt, Short: false},
				},
				Footer:    fmt.Sprintf("Site: %s", site.Name),
				Timestamp: time.Now().Unix(),
			},
		},
	}

	return sendSlackWebhook(webhookURL, payload)
}

func sendSlackIncidentResolved(webhookURL string, site models.Site, incident models.Incident) error {
	startedAt := "Unknown"
	resolvedAt := "Unknown"
	duration := "Unknown"

	if incident.StartedAt != nil {
		startedAt = incident.StartedAt.Format("2006-01-02 15:04:05 UTC")
	}

	if incident.ResolvedAt != nil {
		resolvedAt = incident.ResolvedAt.Format("2006-01-02 15:04:05 UTC")
		if incident.StartedAt != nil {
			duration = incident.ResolvedAt.Sub(*incident.StartedAt).Round(time.Second).String()
		}
	}

	payload := SlackWebhookRequest{
		Username:  Username,
		IconEmoji: ":white_check_mark:",
		Text:      ":white_check_mark: *MONITOR RECOVERED*",
		Attachments: []SlackAttachment{
			{
				Color: "good",
				Title: fmt.Sprintf("Monitor '%s' is back to normal operation", incident.Monitor.UUID),
				Text:  "The incident has been resolved and the monitor is functioning normally.",
				Fields: []SlackField{
					{Title: "Monitor", Value: incident.Monitor.UUID, Short: true},
					{Title: "Type", Value: incident.Monitor.Type, Short: true},
					{Title: "Status", Value: incident.Status, Short: true},
					{Title: "Duration", Value: duration, Short: true},
					{Title: "Incident Title", Value: incident.Title, Short: false},
					{Title: "Started At", Value: startedAt, Short: true},
					{Title: "Resolved At", Value: resolvedAt, Short: true},
				},
				Footer:    fmt.Sprintf("Site: %s", site.Name),
				Timestamp: time.Now().Unix(),
			},
		},
	}

	return sendSlackWebhook(webhookURL, payload)
}

func sendDiscordWebhook(webhookURL string, payload DiscordWebhookRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal Discord payload: %w", err)
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send Discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("Discord webhook returned status %d", resp.StatusCode)
	}

	return nil
}

func sendSlackWebhook(webhookURL string, payload SlackWebhookRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal Slack payload: %w", err)
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send Slack webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("Slack webhook returned status %d", resp.StatusCode)
	}

	return nil
}
