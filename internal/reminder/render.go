package reminder

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"email-task-assistant/pkg/mailer"
)

const subjectTmpl = `[{{.AppName}}] Reminder: {{.Title}}`

const textTmpl = `Hi,

This is a reminder for your task "{{.Title}}".
{{if .Description}}
{{.Description}}
{{end}}
Priority: {{.Priority}}
Status:   {{.Status}}
{{- if .Due}}
Due:      {{.Due}}
{{- end}}
{{if .Link}}
Open it: {{.Link}}
{{end}}
-- {{.AppName}}
`

const htmlTmpl = `<!DOCTYPE html>
<html><body style="font-family:sans-serif">
<p>Hi,</p>
<p>This is a reminder for your task <strong>{{.Title}}</strong>.</p>
{{if .Description}}<p>{{.Description}}</p>{{end}}
<table>
<tr><td>Priority</td><td>{{.Priority}}</td></tr>
<tr><td>Status</td><td>{{.Status}}</td></tr>
{{if .Due}}<tr><td>Due</td><td>{{.Due}}</td></tr>{{end}}
</table>
{{if .Link}}<p><a href="{{.Link}}">Open task</a></p>{{end}}
<p>{{.AppName}}</p>
</body></html>
`

// Renderer turns a Snapshot into the message sent by every channel.
type Renderer struct {
	appName string
	baseURL string
	subject *texttemplate.Template
	text    *texttemplate.Template
	html    *htmltemplate.Template
}

type renderData struct {
	AppName     string
	Title       string
	Description string
	Priority    string
	Status      string
	Due         string
	Link        string
}

// NewRenderer parses the built-in templates. baseURL may be empty.
func NewRenderer(appName, baseURL string) *Renderer {
	return &Renderer{
		appName: appName,
		baseURL: strings.TrimRight(baseURL, "/"),
		subject: texttemplate.Must(texttemplate.New("subject").Parse(subjectTmpl)),
		text:    texttemplate.Must(texttemplate.New("text").Parse(textTmpl)),
		html:    htmltemplate.Must(htmltemplate.New("html").Parse(htmlTmpl)),
	}
}

// Render builds the message addressed to the task owner.
func (r *Renderer) Render(s Snapshot) (mailer.Message, error) {
	data := renderData{
		AppName:     r.appName,
		Title:       s.Title,
		Description: s.Description,
		Priority:    string(s.Priority),
		Status:      string(s.Status),
	}
	if s.DueDate != nil {
		data.Due = s.DueDate.UTC().Format(time.DateOnly)
	}
	if r.baseURL != "" {
		data.Link = r.baseURL + "/tasks/" + s.TaskID
	}

	var subject, text, html bytes.Buffer
	if err := r.subject.Execute(&subject, data); err != nil {
		return mailer.Message{}, err
	}
	if err := r.text.Execute(&text, data); err != nil {
		return mailer.Message{}, err
	}
	if err := r.html.Execute(&html, data); err != nil {
		return mailer.Message{}, err
	}

	return mailer.Message{
		To:      s.OwnerEmail,
		Subject: subject.String(),
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
