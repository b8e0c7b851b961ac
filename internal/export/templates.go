package export

import (
	"bytes"
	"html/template"
	"strings"
)

// SafeHTML is a template function that marks a string as safe HTML
func SafeHTML(s interface{}) template.HTML {
	switch v := s.(type) {
	case string:
		return template.HTML(v)
	case template.HTML:
		return v
	default:
		return template.HTML("")
	}
}

var letterTemplate = template.Must(template.New("letter").Funcs(template.FuncMap{
	"lower":    strings.ToLower,
	"safeHTML": SafeHTML,
}).Parse(letterTemplateSource))

// TemplateData holds data for letter template rendering
type TemplateData struct {
	Title      string
	Date       string
	Salutation string
	BodyHTML   template.HTML
	Signature  string
	Address    string
	Recipients []string
}

// RenderLetterHTML renders the letter template with provided data
func RenderLetterHTML(data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := letterTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const letterTemplateSource = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: Georgia, 'Times New Roman', serif; line-height: 1.5; max-width: 700px; margin: 2rem auto; color: #1a1a1a; }
    .date { text-align: right; margin-bottom: 2rem; }
    .salutation { margin-bottom: 1rem; }
    .body p { margin: 0 0 1rem; }
    .closing { margin-top: 2rem; }
    .address { color: #444; white-space: pre-line; }
    .recipients { margin-top: 2.5rem; padding-top: 0.75rem; border-top: 1px solid #999; font-size: 0.9em; color: #444; }
  </style>
</head>
<body>
  {{if .Date}}<div class="date">{{.Date}}</div>{{end}}
  {{if .Salutation}}<div class="salutation">Dear {{.Salutation}}:</div>{{end}}
  <div class="body">{{.BodyHTML | safeHTML}}</div>
  <div class="closing">
    <p>Sincerely,</p>
    {{if .Signature}}<p>{{.Signature}}</p>{{end}}
    {{if .Address}}<p class="address">{{.Address}}</p>{{end}}
  </div>
  {{if .Recipients}}
  <div class="recipients">
    <div>Sent to:</div>
    {{range .Recipients}}<div>{{.}}</div>{{end}}
  </div>
  {{end}}
</body>
</html>`
