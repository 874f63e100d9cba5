package service

import (
	"bytes"
	"fmt"
	"html/template"

	"fintrack/internal/domain"
	"fintrack/internal/repository"
)

// EmailService is responsible for the business logic around emails.
// It handles template rendering and formatting, but does NOT evaluate
// alert conditions - triggered alerts are passed in as domain objects.
type EmailService interface {
	// SendAlertEmail notifies the rule's recipient that the rule fired.
	// The rule must carry a recipient address.
	SendAlertEmail(rule domain.AlertRule, alert domain.TriggeredAlert) error

	// GenerateAlertEmail renders the notification for a fired rule.
	// Returns the subject and HTML body. Used internally by
	// SendAlertEmail but can also be called separately for previews.
	GenerateAlertEmail(rule domain.AlertRule, alert domain.TriggeredAlert) (string, string, error)
}

type emailServiceHandler struct {
	EmailRepository repository.EmailRepository
}

func NewEmailService(
	emailRepository repository.EmailRepository,
) EmailService {
	return &emailServiceHandler{
		EmailRepository: emailRepository,
	}
}

const alertEmailTemplate = `<html>
<body>
<p>Your alert <strong>{{.RuleName}}</strong> fired on {{.TriggeredAt.Format "Jan 2, 2006"}}.</p>
<p>Condition: <code>{{.Expression}}</code></p>
<p>{{.Message}}</p>
</body>
</html>`

var alertEmailTmpl = template.Must(template.New("alertEmail").Parse(alertEmailTemplate))

func (h *emailServiceHandler) SendAlertEmail(rule domain.AlertRule, alert domain.TriggeredAlert) error {
	if rule.Email == nil {
		return fmt.Errorf("rule %s has no recipient address", rule.ID)
	}

	subject, body, err := h.GenerateAlertEmail(rule, alert)
	if err != nil {
		return err
	}

	return h.EmailRepository.SendEmail(*rule.Email, subject, body)
}

func (h *emailServiceHandler) GenerateAlertEmail(rule domain.AlertRule, alert domain.TriggeredAlert) (string, string, error) {
	subject := fmt.Sprintf("Alert: %s", rule.Name)

	buf := bytes.Buffer{}
	err := alertEmailTmpl.Execute(&buf, alert)
	if err != nil {
		return "", "", fmt.Errorf("failed to render alert email: %w", err)
	}

	return subject, buf.String(), nil
}
