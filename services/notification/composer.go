package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"webmaker/models"
	"webmaker/utils"
)

// Composition is pure: everything that varies (clock, client address) comes
// in as an argument, so the same input always yields the same messages.

const (
	budgetNoticeSubject       = "🎯 Nueva solicitud de presupuesto - Web Maker"
	clientConfirmationSubject = "✅ Confirmación de solicitud de presupuesto - Web Maker"
	contactNoticeSubject      = "Nuevo contacto desde la web"
)

type consentRow struct {
	Label   string
	Granted bool
}

func consentRows(c models.ConsentSet) []consentRow {
	return []consentRow{
		{"Marketing", c.Marketing},
		{"Comunicaciones", c.Communications},
		{"Procesamiento de datos", c.DataProcessing},
		{"Terceros", c.ThirdParties},
		{"Retención de datos", c.DataRetention},
	}
}

func yesNo(b bool) string {
	if b {
		return "SÍ"
	}
	return "NO"
}

// ComposeBudgetNotice builds the internal notice sent to the business owner.
func ComposeBudgetNotice(req models.BudgetRequest, now time.Time, clientIP string) models.EmailMessage {
	var text strings.Builder
	text.WriteString("NUEVA SOLICITUD DE PRESUPUESTO - WEB MAKER\n\n")
	text.WriteString("DATOS DEL CLIENTE:\n")
	fmt.Fprintf(&text, "Nombre: %s\n", req.Name)
	fmt.Fprintf(&text, "Email: %s\n", req.Email)
	fmt.Fprintf(&text, "Teléfono: %s\n", req.Phone)
	if req.Company != "" {
		fmt.Fprintf(&text, "Empresa: %s\n", req.Company)
	}
	text.WriteString("\nCONFIGURACIÓN DEL PROYECTO:\n")
	if req.SelectedBundle != "" {
		fmt.Fprintf(&text, "Kit seleccionado: %s\n", req.SelectedBundle)
	} else {
		text.WriteString("Configuración personalizada:\n")
	}
	for _, svc := range req.ServicesDetails {
		fmt.Fprintf(&text, "• %s (%dx) - %s\n", svc.Name, svc.Quantity, utils.FormatEUR(svc.LineTotal))
	}
	fmt.Fprintf(&text, "\nPRECIO TOTAL: %s\n", utils.FormatEUR(req.TotalPrice))
	if req.ProjectDescription != "" {
		fmt.Fprintf(&text, "\nDESCRIPCIÓN DEL PROYECTO: %s\n", req.ProjectDescription)
	}
	if req.Timeline != "" {
		fmt.Fprintf(&text, "PLAZO DESEADO: %s\n", req.Timeline)
	}
	if req.AdditionalRequirements != "" {
		fmt.Fprintf(&text, "REQUISITOS ADICIONALES: %s\n", req.AdditionalRequirements)
	}
	text.WriteString("\nCONSENTIMIENTOS:\n")
	for _, row := range consentRows(req.Consents) {
		fmt.Fprintf(&text, "- %s: %s\n", row.Label, yesNo(row.Granted))
	}
	fmt.Fprintf(&text, "\nFecha de solicitud: %s\n", utils.FormatDateTime(now))
	fmt.Fprintf(&text, "IP: %s\n", clientIP)

	html := renderTemplate(budgetNoticeTmpl, budgetNoticeData{
		Request:    req,
		Consents:   consentRows(req.Consents),
		Date:       utils.FormatDateTime(now),
		ClientIP:   clientIP,
		TotalPrice: utils.FormatEUR(req.TotalPrice),
		Lines:      priceLines(req.ServicesDetails),
	})

	return models.EmailMessage{
		Subject: budgetNoticeSubject,
		Text:    strings.TrimSpace(text.String()),
		HTML:    html,
	}
}

// ComposeClientConfirmation builds the acknowledgment sent to the submitter.
func ComposeClientConfirmation(req models.BudgetRequest) models.EmailMessage {
	var text strings.Builder
	fmt.Fprintf(&text, "¡Hola %s!\n\n", req.Name)
	text.WriteString("Hemos recibido tu solicitud de presupuesto correctamente. Nuestro equipo la revisará y te contactaremos en las próximas 24 horas.\n\n")
	text.WriteString("RESUMEN DE TU SOLICITUD:\n")
	for _, svc := range req.ServicesDetails {
		fmt.Fprintf(&text, "• %s (%dx) - %s\n", svc.Name, svc.Quantity, utils.FormatEUR(svc.LineTotal))
	}
	fmt.Fprintf(&text, "\nTotal: %s\n\n", utils.FormatEUR(req.TotalPrice))
	text.WriteString("PRÓXIMOS PASOS:\n")
	for _, step := range nextSteps {
		fmt.Fprintf(&text, "- %s\n", step)
	}

	html := renderTemplate(clientConfirmationTmpl, clientConfirmationData{
		Request:    req,
		TotalPrice: utils.FormatEUR(req.TotalPrice),
		Lines:      priceLines(req.ServicesDetails),
		NextSteps:  nextSteps,
	})

	return models.EmailMessage{
		Subject: clientConfirmationSubject,
		Text:    strings.TrimSpace(text.String()),
		HTML:    html,
	}
}

// ComposeContactNotice builds the owner notice for a contact-form submission.
func ComposeContactNotice(req models.ContactRequest, now time.Time, clientIP string) models.EmailMessage {
	var text strings.Builder
	text.WriteString("Nuevo contacto desde la web\n\n")
	fmt.Fprintf(&text, "Nombre: %s %s\n", req.Name, req.Surname)
	fmt.Fprintf(&text, "Email: %s\n", req.Email)
	fmt.Fprintf(&text, "Teléfono: %s\n", req.Phone)
	fmt.Fprintf(&text, "Servicio: %s\n", req.Service)
	fmt.Fprintf(&text, "Presupuesto: %s\n", req.Budget)
	fmt.Fprintf(&text, "Profesión: %s\n", req.Profession)
	fmt.Fprintf(&text, "¿Tiene web?: %s\n", req.HasWebsite)
	if req.WebsiteDetails != "" {
		fmt.Fprintf(&text, "Detalles web: %s\n", req.WebsiteDetails)
	}
	if req.IdeaDescription != "" {
		fmt.Fprintf(&text, "Idea: %s\n", req.IdeaDescription)
	}
	fmt.Fprintf(&text, "\nFecha: %s\n", utils.FormatDateTime(now))
	fmt.Fprintf(&text, "IP: %s\n", clientIP)

	html := renderTemplate(contactNoticeTmpl, contactNoticeData{
		Request:  req,
		Date:     utils.FormatDateTime(now),
		ClientIP: clientIP,
	})

	return models.EmailMessage{
		Subject: contactNoticeSubject,
		Text:    strings.TrimSpace(text.String()),
		HTML:    html,
	}
}

var nextSteps = []string{
	"Revisaremos tu solicitud en detalle",
	"Te enviaremos un presupuesto personalizado",
	"Programaremos una llamada para discutir los detalles",
	"Iniciaremos el proyecto cuando estés listo",
}

// priceLine pairs a selection line with its formatted amount so templates
// stay free of formatting logic.
type priceLine struct {
	Detail models.ServiceDetail
	Amount string
}

func priceLines(details []models.ServiceDetail) []priceLine {
	lines := make([]priceLine, 0, len(details))
	for _, d := range details {
		lines = append(lines, priceLine{Detail: d, Amount: utils.FormatEUR(d.LineTotal)})
	}
	return lines
}

type budgetNoticeData struct {
	Request    models.BudgetRequest
	Consents   []consentRow
	Date       string
	ClientIP   string
	TotalPrice string
	Lines      []priceLine
}

type clientConfirmationData struct {
	Request    models.BudgetRequest
	TotalPrice string
	Lines      []priceLine
	NextSteps  []string
}

type contactNoticeData struct {
	Request  models.ContactRequest
	Date     string
	ClientIP string
}

func renderTemplate(t *template.Template, data any) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		// Composition is deterministic over already-sanitized data; a
		// template failure here is a programming error.
		panic(err)
	}
	return buf.String()
}

var budgetNoticeTmpl = template.Must(template.New("budgetNotice").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <title>Nueva solicitud de presupuesto - Web Maker</title>
  <style>
    body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #1f2937; background-color: #f9fafb; }
    .container { max-width: 700px; margin: 0 auto; background: white; border-radius: 12px; overflow: hidden; }
    .header { background: #1e293b; color: white; padding: 40px 30px; text-align: center; }
    .content { padding: 30px; }
    .section-title { font-size: 20px; font-weight: 700; color: #1e293b; border-bottom: 3px solid #3b82f6; padding-bottom: 10px; margin: 20px 0; }
    .client-info { background: #f8fafc; padding: 25px; border-radius: 12px; border-left: 5px solid #3b82f6; }
    .service-item { background: #f8fafc; padding: 20px; margin: 12px 0; border-radius: 8px; border-left: 4px solid #64748b; }
    .service-name { font-weight: 700; color: #1e293b; }
    .service-price { color: #059669; font-weight: 700; }
    .total-price { background: #059669; color: white; padding: 30px; border-radius: 12px; text-align: center; font-size: 28px; font-weight: 700; margin: 30px 0; }
    .bundle-badge { background: #3b82f6; color: white; padding: 12px 20px; border-radius: 25px; font-weight: 700; display: inline-block; margin-bottom: 20px; }
    .consent-yes { color: #166534; font-weight: 700; }
    .consent-no { color: #991b1b; font-weight: 700; }
    .footer { background: #f8fafc; padding: 25px; text-align: center; color: #64748b; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🎯 NUEVA SOLICITUD DE PRESUPUESTO</h1>
      <p>Web Maker - Configurador de Proyectos</p>
    </div>
    <div class="content">
      <div class="section-title">👤 DATOS DEL CLIENTE</div>
      <div class="client-info">
        <p><strong>Nombre:</strong> {{.Request.Name}}</p>
        <p><strong>Email:</strong> {{.Request.Email}}</p>
        <p><strong>Teléfono:</strong> {{.Request.Phone}}</p>
        {{if .Request.Company}}<p><strong>Empresa:</strong> {{.Request.Company}}</p>{{end}}
      </div>
      <div class="section-title">⚙️ CONFIGURACIÓN DEL PROYECTO</div>
      {{if .Request.SelectedBundle}}<div class="bundle-badge">📦 Kit Seleccionado: {{.Request.SelectedBundle}}</div>
      {{else}}<p><strong>Configuración personalizada:</strong></p>{{end}}
      {{range .Lines}}
      <div class="service-item">
        <div class="service-name">{{.Detail.Name}}</div>
        <div>{{.Detail.Description}}</div>
        <div>Cantidad: {{.Detail.Quantity}} · <span class="service-price">{{.Amount}}</span></div>
      </div>
      {{end}}
      <div class="total-price">💰 PRECIO TOTAL: {{.TotalPrice}}</div>
      {{if or .Request.ProjectDescription .Request.Timeline .Request.AdditionalRequirements}}
      <div class="section-title">📝 INFORMACIÓN ADICIONAL</div>
      {{if .Request.ProjectDescription}}<p><strong>Descripción del proyecto:</strong><br>{{.Request.ProjectDescription}}</p>{{end}}
      {{if .Request.Timeline}}<p><strong>Plazo deseado:</strong> {{.Request.Timeline}}</p>{{end}}
      {{if .Request.AdditionalRequirements}}<p><strong>Requisitos adicionales:</strong><br>{{.Request.AdditionalRequirements}}</p>{{end}}
      {{end}}
      <div class="section-title">✅ CONSENTIMIENTOS GDPR/LOPD</div>
      <ul>
        {{range .Consents}}
        <li>{{.Label}}: {{if .Granted}}<span class="consent-yes">SÍ</span>{{else}}<span class="consent-no">NO</span>{{end}}</li>
        {{end}}
      </ul>
    </div>
    <div class="footer">
      <p><strong>📅 Fecha de solicitud:</strong> {{.Date}}</p>
      <p><strong>🌍 IP:</strong> {{.ClientIP}}</p>
      <p>Esta solicitud fue generada automáticamente desde el configurador de proyectos de Web Maker.</p>
    </div>
  </div>
</body>
</html>`))

var clientConfirmationTmpl = template.Must(template.New("clientConfirmation").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <title>Confirmación de solicitud - Web Maker</title>
  <style>
    body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #1f2937; background-color: #f9fafb; }
    .container { max-width: 600px; margin: 0 auto; background: white; border-radius: 12px; overflow: hidden; }
    .header { background: #059669; color: white; padding: 40px 30px; text-align: center; }
    .content { padding: 30px; }
    .success-message { background: #dcfce7; color: #166534; padding: 20px; border-radius: 8px; margin-bottom: 25px; border-left: 4px solid #16a34a; }
    .summary { background: #f8fafc; padding: 20px; border-radius: 8px; margin-bottom: 25px; }
    .total { font-weight: 700; font-size: 18px; color: #059669; border-top: 2px solid #e2e8f0; padding-top: 15px; margin-top: 15px; }
    .next-steps { background: #fef3c7; padding: 20px; border-radius: 8px; border-left: 4px solid #f59e0b; }
    .footer { background: #f8fafc; padding: 25px; text-align: center; color: #64748b; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>✅ Solicitud Recibida</h1>
      <p>Gracias por confiar en Web Maker</p>
    </div>
    <div class="content">
      <div class="success-message">
        <strong>¡Hola {{.Request.Name}}!</strong><br>
        Hemos recibido tu solicitud de presupuesto correctamente. Nuestro equipo la revisará y te contactaremos en las próximas 24 horas.
      </div>
      <div class="summary">
        <h3>📋 Resumen de tu solicitud:</h3>
        {{range .Lines}}
        <div><strong>{{.Detail.Name}}</strong> ({{.Detail.Quantity}}x) - {{.Amount}}</div>
        {{end}}
        <div class="total">Total: {{.TotalPrice}}</div>
      </div>
      <div class="next-steps">
        <h3>🔄 Próximos pasos:</h3>
        <ul>
          {{range .NextSteps}}<li>{{.}}</li>{{end}}
        </ul>
      </div>
    </div>
    <div class="footer">
      <p><strong>Web Maker</strong> - Transformando ideas en realidad digital</p>
      <p>📧 info@web-maker.es</p>
    </div>
  </div>
</body>
</html>`))

var contactNoticeTmpl = template.Must(template.New("contactNotice").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Nuevo contacto desde la web</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #f8f9fa; padding: 20px; border-radius: 8px; margin-bottom: 20px; }
    .field { margin-bottom: 15px; }
    .label { font-weight: bold; color: #555; }
    .highlight { background: #e3f2fd; padding: 10px; border-radius: 4px; }
    .footer { margin-top: 30px; padding: 15px; background: #f5f5f5; border-radius: 8px; font-size: 14px; color: #666; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2>🎉 Nuevo contacto desde la web</h2>
      <p>Has recibido una nueva solicitud de contacto.</p>
    </div>
    <div class="field"><span class="label">👤 Nombre completo:</span> {{.Request.Name}} {{.Request.Surname}}</div>
    <div class="field"><span class="label">📧 Email:</span> {{.Request.Email}}</div>
    <div class="field"><span class="label">📱 Teléfono:</span> {{.Request.Phone}}</div>
    <div class="field"><span class="label">💼 Servicio solicitado:</span> <span class="highlight">{{.Request.Service}}</span></div>
    <div class="field"><span class="label">💰 Presupuesto:</span> {{.Request.Budget}}</div>
    <div class="field"><span class="label">🏢 Profesión/Sector:</span> {{.Request.Profession}}</div>
    <div class="field"><span class="label">🌐 ¿Tiene web actual?:</span> {{.Request.HasWebsite}}</div>
    {{if .Request.WebsiteDetails}}<div class="field"><span class="label">🔗 Detalles de la web actual:</span> {{.Request.WebsiteDetails}}</div>{{end}}
    {{if .Request.IdeaDescription}}<div class="field"><span class="label">💡 Descripción de la idea:</span> <span class="highlight">{{.Request.IdeaDescription}}</span></div>{{end}}
    <div class="footer">
      <p><strong>📅 Fecha:</strong> {{.Date}}</p>
      <p><strong>🌍 IP:</strong> {{.ClientIP}}</p>
    </div>
  </div>
</body>
</html>`))

