package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"strings"

	"journal_monitor/internal/domain"
)

// SMTPConfig is the per-user transport configuration, stored as a JSON blob
// in user settings.
type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
}

// ParseSMTPConfig parses the stored JSON blob defensively. Any malformed or
// incomplete configuration is an error the caller degrades to a no-op.
func ParseSMTPConfig(raw string) (*SMTPConfig, error) {
	var cfg SMTPConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("parse smtp config: %w", err)
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp config missing host")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &cfg, nil
}

// EmailNotifier renders a digest of newly-seen articles and dispatches it
// over SMTP. It is a pure consumer of the orchestrator's output: missing or
// malformed configuration and transport failures degrade to a logged no-op,
// never an error that aborts the caller.
type EmailNotifier struct {
	logger *slog.Logger
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func New(logger *slog.Logger) *EmailNotifier {
	return &EmailNotifier{
		logger: logger.With("component", "notifier"),
		send:   smtp.SendMail,
	}
}

// SendDigest dispatches a digest of articles to the user's configured
// address. No-op when the list is empty, notifications are disabled, or the
// transport configuration is absent or malformed.
func (n *EmailNotifier) SendDigest(ctx context.Context, settings *domain.UserSettings, articles []domain.JournalArticle) {
	if len(articles) == 0 {
		return
	}
	if !settings.EmailEnabled || settings.TargetEmail == nil || *settings.TargetEmail == "" {
		n.logger.Debug("email disabled or no target address", "user_id", settings.UserID)
		return
	}
	if settings.SMTPConfig == nil || *settings.SMTPConfig == "" {
		n.logger.Warn("email enabled but no smtp config", "user_id", settings.UserID)
		return
	}

	cfg, err := ParseSMTPConfig(*settings.SMTPConfig)
	if err != nil {
		n.logger.Warn("invalid smtp config", "user_id", settings.UserID, "error", err)
		return
	}

	to := *settings.TargetEmail
	from := cfg.From
	if from == "" {
		from = to
	}

	body, err := RenderDigest(articles)
	if err != nil {
		n.logger.Warn("failed to render digest", "user_id", settings.UserID, "error", err)
		return
	}

	subject := fmt.Sprintf("[Journal Monitor] %d New Articles Found", len(articles))
	msg := buildMessage(from, to, subject, body)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	if err := n.send(addr, auth, from, []string{to}, msg); err != nil {
		n.logger.Warn("failed to send digest", "user_id", settings.UserID, "error", err)
		return
	}

	n.logger.Info("digest sent", "user_id", settings.UserID, "to", to, "articles", len(articles))
}

var digestTemplate = template.Must(template.New("digest").Parse(`<h1>Journal Monitor Update</h1>
<p>Found {{len .}} new articles today:</p>
<ul>
{{- range .}}
  <li style="margin-bottom: 10px;">
    <strong><a href="{{.Link}}">{{.Title}}</a></strong><br/>
    <em style="color: #666;">{{.Authors}}</em><br/>
    <span style="font-size: 0.9em; color: #888;">{{.Journal}} - {{.Date}}</span>
  </li>
{{- end}}
</ul>
<p style="font-size: 12px; color: #999;">This email was sent automatically by Journal Monitor.</p>
`))

type digestEntry struct {
	Link    string
	Title   string
	Authors string
	Journal string
	Date    string
}

// RenderDigest renders the HTML digest body for a list of new articles.
func RenderDigest(articles []domain.JournalArticle) (string, error) {
	entries := make([]digestEntry, 0, len(articles))
	for _, a := range articles {
		link := a.URL
		if link == "" {
			link = "https://doi.org/" + a.DOI
		}
		authors := a.Authors
		if authors == "" {
			authors = "Unknown Authors"
		}
		entries = append(entries, digestEntry{
			Link:    link,
			Title:   a.Article.Title,
			Authors: authors,
			Journal: a.Journal.Title,
			Date:    a.PublicationDate.Format("2006-01-02"),
		})
	}

	var buf bytes.Buffer
	if err := digestTemplate.Execute(&buf, entries); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildMessage(from, to, subject, htmlBody string) []byte {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	return []byte(msg.String())
}
