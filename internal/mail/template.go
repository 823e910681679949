package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const budgetAlertTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Budget Notification</title></head>
<body style="margin:0;padding:0;font-family:Arial,Helvetica,sans-serif;background-color:#f4f6f8;">
<table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0">
<tr><td align="center" style="padding:40px 0;">
<table role="presentation" width="600" cellspacing="0" cellpadding="0" border="0" style="background:#ffffff;border-radius:12px;">
<tr><td style="background:#4f46e5;padding:20px;color:#ffffff;text-align:center;"><h1 style="margin:0;font-size:24px;">Budget Update</h1></td></tr>
<tr><td style="padding:30px;">
<p style="font-size:16px;color:#333333;line-height:1.5;">Hello {{.RecipientName}},<br><br>{{.Summary}}{{if .Remark}} <strong>{{.Remark}}</strong>{{end}}</p>
<table width="100%" cellpadding="10" cellspacing="0" style="border-collapse:collapse;font-size:14px;">
<tr><td style="border-bottom:1px solid #eee;font-weight:bold;width:40%;">Category</td>
<td style="border-bottom:1px solid #eee;"><span style="background:{{.BadgeColor}};color:#fff;padding:4px 10px;border-radius:6px;">{{.Category}}</span></td></tr>
<tr><td style="border-bottom:1px solid #eee;font-weight:bold;">Notification Type</td><td style="border-bottom:1px solid #eee;">{{.NotificationType}}</td></tr>
<tr><td style="border-bottom:1px solid #eee;font-weight:bold;">{{.AmountLabel}}</td><td style="border-bottom:1px solid #eee;">{{.Budgeted}}</td></tr>
<tr><td style="border-bottom:1px solid #eee;font-weight:bold;">{{.RemainingLabel}}</td><td style="border-bottom:1px solid #eee;">{{.Remaining}}</td></tr>
</table>
<p style="margin-top:25px;font-size:14px;color:#666666;">Keep tracking your {{.Category}} to stay on top of your financial goals.</p>
{{if .AppURL}}<p style="font-size:14px;"><a href="{{.AppURL}}">Open Finance Tracker</a></p>{{end}}
</td></tr>
<tr><td style="background:#f4f6f8;text-align:center;padding:15px;font-size:12px;color:#999999;">&copy; {{.Year}} Finance Tracker</td></tr>
</table>
</td></tr>
</table>
</body>
</html>`

var badgeColors = map[string]string{
	"income":   "#16a34a",
	"expenses": "#dc2626",
	"savings":  "#2563eb",
}

const defaultBadgeColor = "#6b7280"

type alertView struct {
	RecipientName    string
	Category         string
	NotificationType string
	Summary          string
	Remark           string
	BadgeColor       string
	AmountLabel      string
	RemainingLabel   string
	Budgeted         string
	Remaining        string
	AppURL           string
	Year             int
}

// Renderer turns a budget alert into a subject line and an HTML body. The
// wording follows the category type so savings and income targets read as
// goals rather than limits.
type Renderer struct {
	tmpl     *template.Template
	currency string
	appURL   string
	now      func() time.Time
}

func NewRenderer(currency, appURL string) (*Renderer, error) {
	tmpl, err := template.New("budget_alert").Parse(budgetAlertTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse budget alert template: %w", err)
	}
	return &Renderer{tmpl: tmpl, currency: currency, appURL: appURL, now: time.Now}, nil
}

func (r *Renderer) money(d decimal.Decimal) string {
	return r.currency + d.StringFixed(2)
}

// Render returns the subject and HTML body for msg
func (r *Renderer) Render(msg *BudgetAlertMessage) (string, string, error) {
	view := r.view(msg)

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return "", "", fmt.Errorf("render budget alert: %w", err)
	}

	subject := fmt.Sprintf("Budget %s: %s", msg.NotificationType, view.Category)
	return subject, buf.String(), nil
}

func (r *Renderer) view(msg *BudgetAlertMessage) alertView {
	title := cases.Title(language.English)
	categoryType := strings.ToLower(msg.CategoryType)
	spent := r.money(msg.AmountSpent())
	budgeted := r.money(msg.BudgetedAmount)
	remaining := r.money(msg.RemainingBudget)
	exceeded := msg.NotificationType == "exceeded"

	v := alertView{
		RecipientName:    msg.RecipientName,
		Category:         msg.Category,
		NotificationType: title.String(msg.NotificationType),
		BadgeColor:       defaultBadgeColor,
		AmountLabel:      "Budgeted Amount",
		RemainingLabel:   "Remaining Budget",
		Budgeted:         budgeted,
		Remaining:        remaining,
		AppURL:           r.appURL,
		Year:             r.now().Year(),
	}
	if v.RecipientName == "" {
		v.RecipientName = msg.Email
	}
	if color, ok := badgeColors[categoryType]; ok {
		v.BadgeColor = color
	}

	switch categoryType {
	case "savings":
		v.AmountLabel = "Savings Goal"
		v.RemainingLabel = "Remaining to Save"
		v.Summary = fmt.Sprintf("You have saved %s so far towards your savings goal of %s.", spent, budgeted)
		if exceeded {
			v.Remark = "Congratulations, you have exceeded your savings target!"
		} else {
			v.Remark = "Great job! You are close to reaching your savings goal."
		}
	case "income":
		v.AmountLabel = "Income Target"
		v.RemainingLabel = "Remaining to Earn"
		v.Summary = fmt.Sprintf("You have earned %s out of your target income of %s.", spent, budgeted)
		if exceeded {
			v.Remark = "Amazing! You have exceeded your income target."
		} else {
			v.Remark = "You are almost at your income target, keep it up!"
		}
	default:
		if exceeded {
			v.Summary = fmt.Sprintf("You have exceeded your %s budget. You spent %s against the budgeted %s.", msg.Category, spent, budgeted)
		} else {
			v.Summary = fmt.Sprintf("You have spent %s out of your %s budget of %s. Only %s is left.", spent, msg.Category, budgeted, remaining)
		}
	}

	return v
}
