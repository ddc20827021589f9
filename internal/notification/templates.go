package notification

import (
	"bytes"
	"fmt"
	"html/template"
)

// Rendered is the outcome of template resolution for one event
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

type templateDef struct {
	subject map[string]string // per language
	html    string
	text    string
}

var templateDefs = map[string]templateDef{
	TemplateWelcome: {
		subject: map[string]string{
			"sq": "Mirë se vini në TechStore, {{.name}}!",
			"en": "Welcome to TechStore, {{.name}}!",
		},
		html: `<html><body><h2>Përshëndetje {{.name}},</h2><p>Llogaria juaj në TechStore u krijua me sukses. Tani mund të konfiguroni PC-në tuaj, të porosisni PS5 dhe të ndiqni riparimet tuaja online.</p></body></html>`,
		text: `Përshëndetje {{.name}}, llogaria juaj në TechStore u krijua me sukses.`,
	},
	TemplateOrderConfirmation: {
		subject: map[string]string{
			"sq": "Porosia juaj {{.reference}} u pranua",
			"en": "Your order {{.reference}} was received",
		},
		html: `<html><body><h2>Faleminderit për porosinë!</h2><p>Porosia <strong>{{.reference}}</strong> me vlerë {{.total}} u pranua dhe po përpunohet.</p></body></html>`,
		text: `Porosi e re: {{.reference}} ({{.total}})`,
	},
	TemplateRepairStatus: {
		subject: map[string]string{
			"sq": "Riparimi {{.reference}}: {{.status}}",
			"en": "Repair {{.reference}}: {{.status}}",
		},
		html: `<html><body><p>Statusi i riparimit <strong>{{.reference}}</strong> u ndryshua në: <strong>{{.status}}</strong>.</p></body></html>`,
		text: `Riparimi {{.reference}} kaloi në statusin {{.status}}.`,
	},
	TemplateQuoteReceived: {
		subject: map[string]string{
			"sq": "Kërkesë e re oferte nga {{.name}}",
			"en": "New quote request from {{.name}}",
		},
		html: `<html><body><p>Kërkesë e re oferte nga <strong>{{.name}}</strong>.</p></body></html>`,
		text: `Kërkesë e re oferte nga {{.name}}.`,
	},
}

const genericSubject = "TechStore"
const genericText = "Ju keni një njoftim të ri nga TechStore."
const genericHTML = `<html><body><p>Ju keni një njoftim të ri nga TechStore.</p></body></html>`

// Render resolves a template id to subject and body for the given language.
// Resolution is a pure function of id, params and language. An unknown id is
// a programming-contract violation: with strict set (development) it returns
// an error, otherwise it degrades to a generic message.
func Render(templateID, language string, params map[string]string, strict bool) (Rendered, error) {
	def, ok := templateDefs[templateID]
	if !ok {
		if strict {
			return Rendered{}, fmt.Errorf("unknown notification template %q", templateID)
		}
		return Rendered{Subject: genericSubject, HTML: genericHTML, Text: genericText}, nil
	}

	if language == "" {
		language = "sq"
	}
	subjectTmpl, ok := def.subject[language]
	if !ok {
		subjectTmpl = def.subject["sq"]
	}

	subject, err := execute(templateID+"-subject", subjectTmpl, params)
	if err != nil {
		return Rendered{}, err
	}
	html, err := execute(templateID+"-html", def.html, params)
	if err != nil {
		return Rendered{}, err
	}
	text, err := execute(templateID+"-text", def.text, params)
	if err != nil {
		return Rendered{}, err
	}

	return Rendered{Subject: subject, HTML: html, Text: text}, nil
}

func execute(name, tmpl string, params map[string]string) (string, error) {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}
