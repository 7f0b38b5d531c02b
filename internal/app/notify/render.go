package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"meeting-insights/internal/app/model"
)

var emailTemplate = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.5;">
<h1>{{.Title}}</h1>
<h2>Summary</h2>
<p>{{.Result.Summary}}</p>
<h2>Objections &amp; Resolutions</h2>
{{if .Result.Objections}}<ul>
{{range .Result.Objections}}<li>{{.}}</li>
{{end}}</ul>{{else}}<p>None identified.</p>{{end}}
<h2>Action Items</h2>
{{if .Result.ActionItems}}<ul>
{{range .Result.ActionItems}}<li>{{.}}</li>
{{end}}</ul>{{else}}<p>None identified.</p>{{end}}
<h2>Full Transcript</h2>
<pre style="white-space: pre-wrap;">{{.Result.Transcript}}</pre>
</body>
</html>
`))

// Render builds the HTML email body for a result. All model output is escaped.
func Render(title string, result *model.ExtractionResult) (string, error) {
	var buf bytes.Buffer
	err := emailTemplate.Execute(&buf, struct {
		Title  string
		Result *model.ExtractionResult
	}{title, result})
	if err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}
	return buf.String(), nil
}
