package email

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/pkg/errors"
)

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateCommentNotification corresponds to templates/comment_notification.html
	TemplateCommentNotification Template = "comment_notification"
)

//go:embed templates/*.html
var templateFS embed.FS

// Render executes the named template with data and returns the HTML body.
func Render(name Template, data map[string]string) (string, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/"+string(name)+".html")
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse email template %s", name)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}
	return body.String(), nil
}
