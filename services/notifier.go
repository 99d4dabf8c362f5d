package services

import (
	"bytes"
	"context"
	"text/template"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/models"
)

const submittedLayout = "January 02, 2006 at 03:04 PM UTC"

var templates = template.Must(template.New("mail").Funcs(template.FuncMap{
	"stamp": func(t time.Time) string { return t.UTC().Format(submittedLayout) },
}).Parse(mailTemplates))

// Notifier sends the operator notification and the submitter confirmation
// for each accepted form submission.
type Notifier struct {
	mailer Mailer
	from   string
	notify string
	owner  string
	logger zerolog.Logger
}

func NewNotifier(mailer Mailer, cfg config.MailConfig) *Notifier {
	owner := cfg.OwnerName
	if owner == "" {
		owner = "Portfolio Owner"
	}
	return &Notifier{
		mailer: mailer,
		from:   cfg.From,
		notify: cfg.NotifyAddress,
		owner:  owner,
		logger: log.With().Str("service", "notifier").Logger(),
	}
}

type serviceRequestMail struct {
	*models.ServiceRequest
	Service  string
	Timeline string
	Budget   string
	Owner    string
	Contact  string
}

type contactMessageMail struct {
	*models.ContactMessage
	Owner   string
	Contact string
}

// ServiceRequestReceived mails the operator about r and confirms receipt to
// the submitter. It reports whether the operator notification was delivered;
// the confirmation is best effort and never affects the result.
func (n *Notifier) ServiceRequestReceived(ctx context.Context, r *models.ServiceRequest) bool {
	data := serviceRequestMail{
		ServiceRequest: r,
		Service:        r.ServiceType.Label(),
		Timeline:       r.PreferredTimeline.Label(),
		Budget:         r.BudgetRange.Label(),
		Owner:          n.owner,
		Contact:        n.notify,
	}
	sent := n.notifyOperator(ctx, "service_request_notification", data,
		"🛠️ New Service Request: "+data.Service, r.Email)
	n.confirm(ctx, "service_request_confirmation", data,
		"Service Request Received - "+data.Service, r.Email)
	return sent
}

// ContactMessageReceived is the contact form counterpart of
// ServiceRequestReceived.
func (n *Notifier) ContactMessageReceived(ctx context.Context, m *models.ContactMessage) bool {
	data := contactMessageMail{ContactMessage: m, Owner: n.owner, Contact: n.notify}
	sent := n.notifyOperator(ctx, "contact_message_notification", data,
		"📧 Contact Form: "+m.Subject, m.Email)
	n.confirm(ctx, "contact_message_confirmation", data,
		"Message Received - Thank You for Contacting Me", m.Email)
	return sent
}

func (n *Notifier) notifyOperator(ctx context.Context, tmpl string, data any, subject, replyTo string) bool {
	if n.notify == "" {
		n.logger.Warn().Str("subject", subject).Msg("NOTIFY_EMAIL is not set, skipping operator notification")
		return false
	}
	body, err := render(tmpl, data)
	if err != nil {
		n.logger.Error().Err(err).Str("template", tmpl).Msg("Failed to render notification email")
		return false
	}
	err = n.mailer.Send(ctx, Message{
		From:    n.from,
		To:      []string{n.notify},
		ReplyTo: replyTo,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		n.logger.Error().Err(err).Str("to", n.notify).Msg("Notification email failed")
		return false
	}
	n.logger.Info().Str("to", n.notify).Str("replyTo", replyTo).Msg("Notification email sent")
	return true
}

func (n *Notifier) confirm(ctx context.Context, tmpl string, data any, subject, to string) {
	body, err := render(tmpl, data)
	if err != nil {
		n.logger.Warn().Err(err).Str("template", tmpl).Msg("Failed to render confirmation email")
		return
	}
	err = n.mailer.Send(ctx, Message{
		From:    n.from,
		To:      []string{to},
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		n.logger.Warn().Err(err).Str("to", to).Msg("Confirmation email failed")
		return
	}
	n.logger.Info().Str("to", to).Msg("Confirmation email sent")
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const mailTemplates = `
{{- define "service_request_notification" -}}
═══════════════════════════════════════════════════
NEW SERVICE REQUEST
═══════════════════════════════════════════════════

SERVICE TYPE: {{.Service}}

FROM: {{.FullName}}
EMAIL: {{.Email}}

───────────────────────────────────────────────────
PROJECT REQUIREMENTS:
───────────────────────────────────────────────────

{{.ProjectRequirements}}

───────────────────────────────────────────────────
PROJECT DETAILS:
───────────────────────────────────────────────────

Preferred Timeline: {{.Timeline}}
Budget Range: {{.Budget}}

───────────────────────────────────────────────────
SUBMITTED: {{stamp .SubmittedAt}}
───────────────────────────────────────────────────

💡 TIP: Click "Reply" to respond directly to {{.FullName}} at {{.Email}}
{{end -}}

{{- define "service_request_confirmation" -}}
Dear {{.FullName}},

Thank you for submitting a service request for {{.Service}}!

I have received your request and will review the details carefully. You can expect to hear back from me within 24 hours with a detailed proposal and timeline.

Request Summary:
- Service Type: {{.Service}}
- Timeline: {{.Timeline}}
- Budget Range: {{.Budget}}

If you have any urgent questions in the meantime, feel free to reply to this email.

Best regards,
{{.Owner}}
{{- if .Contact}}
{{.Contact}}{{end}}

---
This is an automated confirmation email. Your request has been logged and will be reviewed shortly.
{{end -}}

{{- define "contact_message_notification" -}}
═══════════════════════════════════════════════════
NEW CONTACT FORM SUBMISSION
═══════════════════════════════════════════════════

FROM: {{.FullName}}
EMAIL: {{.Email}}
SUBJECT: {{.Subject}}

───────────────────────────────────────────────────
MESSAGE:
───────────────────────────────────────────────────

{{.Message}}

───────────────────────────────────────────────────
SUBMITTED: {{stamp .SubmittedAt}}
───────────────────────────────────────────────────

💡 TIP: Click "Reply" to respond directly to {{.FullName}} at {{.Email}}
{{end -}}

{{- define "contact_message_confirmation" -}}
Dear {{.FullName}},

Thank you for reaching out to me!

I have received your message regarding "{{.Subject}}" and I appreciate you taking the time to get in touch.

I will review your message carefully and get back to you as soon as possible, typically within 24-48 hours.

Your Message Summary:
- Subject: {{.Subject}}
- Received: {{stamp .SubmittedAt}}
{{- if .Contact}}

If your inquiry is urgent, feel free to reach out to me directly at {{.Contact}}.{{end}}

Best regards,
{{.Owner}}
{{- if .Contact}}
{{.Contact}}{{end}}

---
This is an automated confirmation email. Your message has been successfully logged.
{{end -}}
`
