package printing

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.html
var templateFS embed.FS

const purchaseOrderTemplate = "purchase_order_a4.html"

// TemplateEngine renders the embedded document templates
type TemplateEngine struct {
	templates *template.Template
	funcMap   template.FuncMap
}

// NewTemplateEngine parses the embedded templates and returns an engine
func NewTemplateEngine() (*TemplateEngine, error) {
	e := &TemplateEngine{}
	e.funcMap = template.FuncMap{
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"title": titleCase,
		"add1":  func(i int) int { return i + 1 },
		"nl2br": nl2br,
	}

	tmpl, err := template.New("documents").Funcs(e.funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, NewRenderError(ErrCodeTemplateFailed, "failed to parse embedded templates", err)
	}
	e.templates = tmpl
	return e, nil
}

// RenderPurchaseOrder renders the A4 purchase order template
func (e *TemplateEngine) RenderPurchaseOrder(doc *PurchaseOrderDocument) (string, error) {
	if doc == nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "document is nil", nil)
	}
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, purchaseOrderTemplate, doc); err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "failed to render purchase order template", err)
	}
	return buf.String(), nil
}

// RenderString renders an ad hoc template with the engine's functions
func (e *TemplateEngine) RenderString(name, content string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Funcs(e.funcMap).Parse(content)
	if err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "failed to parse template "+name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "failed to render template "+name, err)
	}
	return buf.String(), nil
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
