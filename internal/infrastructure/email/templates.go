package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PaymentEmailData fills the payment notification templates.
type PaymentEmailData struct {
	Name         string
	PlanName     string
	Amount       string
	Reason       string
	DashboardURL string
}

type emailTemplate struct {
	subject string
	html    *template.Template
	text    *texttemplate.Template
}

var titleCaser = cases.Title(language.English)

var approvedTemplate = emailTemplate{
	subject: "Your {{.PlanName}} plan is active",
	html: template.Must(template.New("approved").Parse(`<html>
<body>
	<h2>Payment confirmed</h2>
	<p>Hi {{.Name}},</p>
	<p>We received your payment of {{.Amount}}. Your <strong>{{.PlanName}}</strong> plan is now active and your interview quota has been reset.</p>
	{{if .DashboardURL}}<p><a href="{{.DashboardURL}}">Open your dashboard</a></p>{{end}}
</body>
</html>`)),
	text: texttemplate.Must(texttemplate.New("approved").Parse(`Payment confirmed

Hi {{.Name}},

We received your payment of {{.Amount}}. Your {{.PlanName}} plan is now active and your interview quota has been reset.
{{if .DashboardURL}}
Open your dashboard: {{.DashboardURL}}
{{end}}`)),
}

var rejectedTemplate = emailTemplate{
	subject: "Your payment for {{.PlanName}} was not approved",
	html: template.Must(template.New("rejected").Parse(`<html>
<body>
	<h2>Payment not approved</h2>
	<p>Hi {{.Name}},</p>
	<p>Your payment of {{.Amount}} for the <strong>{{.PlanName}}</strong> plan could not be approved.</p>
	<p>Reason: {{.Reason}}</p>
	<p>Reply to this email or submit a new payment proof if you think this is a mistake.</p>
</body>
</html>`)),
	text: texttemplate.Must(texttemplate.New("rejected").Parse(`Payment not approved

Hi {{.Name}},

Your payment of {{.Amount}} for the {{.PlanName}} plan could not be approved.
Reason: {{.Reason}}

Reply to this email or submit a new payment proof if you think this is a mistake.
`)),
}

func render(t emailTemplate, data PaymentEmailData) (subject, htmlBody, plainBody string, err error) {
	data.Name = titleCaser.String(strings.TrimSpace(data.Name))
	if data.Name == "" {
		data.Name = "there"
	}

	subjectTmpl, err := texttemplate.New("subject").Parse(t.subject)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to parse subject: %w", err)
	}

	var sb, hb, pb bytes.Buffer
	if err := subjectTmpl.Execute(&sb, data); err != nil {
		return "", "", "", fmt.Errorf("failed to render subject: %w", err)
	}
	if err := t.html.Execute(&hb, data); err != nil {
		return "", "", "", fmt.Errorf("failed to render html body: %w", err)
	}
	if err := t.text.Execute(&pb, data); err != nil {
		return "", "", "", fmt.Errorf("failed to render text body: %w", err)
	}
	return sb.String(), hb.String(), pb.String(), nil
}
