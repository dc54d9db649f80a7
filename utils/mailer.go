package utils

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"leadgate/models"
)

// leadAlertTemplate is the operator notification body. Embedded so the
// binary ships self-contained.
const leadAlertTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Lead Received</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; }
        table { border-collapse: collapse; width: 100%; margin: 20px 0; }
        td { padding: 8px 12px; border: 1px solid #eee; }
        td.label { font-weight: bold; color: #2c3e50; width: 30%; }
        .footer { margin-top: 30px; font-size: 12px; color: #7f8c8d; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h2>New Enquiry from the Website</h2>
    </div>

    <table>
        <tr><td class="label">Name</td><td>{{.Name}}</td></tr>
        <tr><td class="label">Email</td><td>{{.Email}}</td></tr>
        <tr><td class="label">Phone</td><td>{{.Phone}}</td></tr>
        {{if .Course}}<tr><td class="label">Course</td><td>{{.Course}}</td></tr>{{end}}
        {{if .Address}}<tr><td class="label">Address</td><td>{{.Address}}</td></tr>{{end}}
        <tr><td class="label">Received</td><td>{{.CreatedAt}}</td></tr>
    </table>

    <div class="footer">
        <p>Sent automatically by the lead capture service.</p>
    </div>
</body>
</html>`

// LeadMailer sends operator alerts over SMTP.
type LeadMailer struct {
	dialer    *gomail.Dialer
	fromName  string
	fromEmail string
	recipient string
	tmpl      *template.Template
}

// NewLeadMailer builds a mailer for the single fixed operator recipient.
func NewLeadMailer(host string, port int, username, password, fromEmail, recipient string) *LeadMailer {
	return &LeadMailer{
		dialer:    gomail.NewDialer(host, port, username, password),
		fromName:  "Lead Capture",
		fromEmail: fromEmail,
		recipient: recipient,
		tmpl:      template.Must(template.New("lead_alert").Parse(leadAlertTemplate)),
	}
}

// SendLeadAlert emails the lead's human-facing fields to the operator.
// One attempt, no retry.
func (m *LeadMailer) SendLeadAlert(lead models.Lead) error {
	var body bytes.Buffer
	if err := m.tmpl.Execute(&body, lead.ToResponse()); err != nil {
		return fmt.Errorf("error executing template: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail))
	msg.SetHeader("To", m.recipient)
	msg.SetHeader("Subject", fmt.Sprintf("New lead: %s (%s)", lead.Name, lead.Phone))
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	return nil
}
