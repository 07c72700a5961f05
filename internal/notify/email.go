package notify

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/nwpolishing/backend/internal/quotes"
)

// quoteEmailTmpl renders the notification body as a simple two-column table.
// The phone row only appears when the customer supplied a number; the message
// cell preserves the customer's line breaks.
var quoteEmailTmpl = template.Must(template.New("quote-email").Parse(`<div>
  <h2>New Quote Request</h2>
  <table cellpadding="8" cellspacing="0" border="0" style="border-collapse: collapse;">
    <tr>
      <td style="font-weight: bold; border: 1px solid #ddd;">Company</td>
      <td style="border: 1px solid #ddd;">{{.Company}}</td>
    </tr>
    <tr>
      <td style="font-weight: bold; border: 1px solid #ddd;">Contact Name</td>
      <td style="border: 1px solid #ddd;">{{.ContactName}}</td>
    </tr>
    <tr>
      <td style="font-weight: bold; border: 1px solid #ddd;">Email</td>
      <td style="border: 1px solid #ddd;"><a href="mailto:{{.Email}}">{{.Email}}</a></td>
    </tr>
    {{- if .Phone}}
    <tr>
      <td style="font-weight: bold; border: 1px solid #ddd;">Phone</td>
      <td style="border: 1px solid #ddd;"><a href="tel:{{.Phone}}">{{.Phone}}</a></td>
    </tr>
    {{- end}}
    <tr>
      <td style="font-weight: bold; border: 1px solid #ddd; vertical-align: top;">Message</td>
      <td style="border: 1px solid #ddd; white-space: pre-wrap;">{{.Message}}</td>
    </tr>
  </table>
  {{- if .AdminURL}}
  <p><a href="{{.AdminURL}}">View in admin panel</a></p>
  {{- end}}
</div>`))

type quoteEmailData struct {
	Company     string
	ContactName string
	Email       string
	Phone       string
	Message     string
	AdminURL    string
}

// RenderQuoteEmail produces the subject and HTML body for a new quote
// request notification. adminBaseURL may be empty, which drops the admin
// link from the footer.
func RenderQuoteEmail(req quotes.QuoteRequest, adminBaseURL string) (subject, body string, err error) {
	data := quoteEmailData{
		Company:     req.Company,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
	}
	if adminBaseURL != "" && req.ID != "" {
		data.AdminURL = fmt.Sprintf("%s/admin/quote-requests/%s", strings.TrimRight(adminBaseURL, "/"), req.ID)
	}

	var b strings.Builder
	if err := quoteEmailTmpl.Execute(&b, data); err != nil {
		return "", "", fmt.Errorf("render quote email: %w", err)
	}
	return fmt.Sprintf("New Quote Request from %s", req.Company), b.String(), nil
}
