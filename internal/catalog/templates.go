// Package catalog holds the read-only list of starter automations users can
// clone from.
package catalog

// Template is a starter automation definition.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Trigger     string `json:"trigger"`
	Action      string `json:"action"`
	TimeSaved   int    `json:"time_saved"`
	Icon        string `json:"icon"`
}

// CategoryAll selects the whole catalog.
const CategoryAll = "all"

// Categories lists the automation categories, in display order.
var Categories = []string{"sales", "finance", "hr", "marketing", "operations", "custom"}

var templates = []Template{
	{ID: "t1", Name: "Auto-sync leads from Gmail to CRM", Description: "Automatically capture new leads from emails and push to your CRM", Category: "sales", Trigger: "New email with lead info", Action: "Create CRM contact", TimeSaved: 45, Icon: "mail"},
	{ID: "t2", Name: "Extract invoice data from PDFs", Description: "Parse PDF invoices and populate spreadsheets automatically", Category: "finance", Trigger: "New PDF in Drive", Action: "Extract data to Sheets", TimeSaved: 60, Icon: "file-text"},
	{ID: "t3", Name: "New employee onboarding docs", Description: "Send welcome docs to folder and notify team on Slack", Category: "hr", Trigger: "New employee added", Action: "Send docs + Slack alert", TimeSaved: 30, Icon: "users"},
	{ID: "t4", Name: "Weekly report to Slack", Description: "Compile weekly metrics and post summary to your Slack channel", Category: "marketing", Trigger: "Every Monday 9 AM", Action: "Post report to Slack", TimeSaved: 20, Icon: "bar-chart"},
	{ID: "t5", Name: "Sync inventory across platforms", Description: "Keep inventory levels updated across all your selling platforms", Category: "operations", Trigger: "Inventory change", Action: "Update all platforms", TimeSaved: 90, Icon: "package"},
	{ID: "t6", Name: "Auto-respond to customer queries", Description: "AI reads customer emails and drafts responses for review", Category: "sales", Trigger: "New customer email", Action: "Draft AI response", TimeSaved: 35, Icon: "message-square"},
	{ID: "t7", Name: "Expense report generation", Description: "Collect receipts from email, categorize, and generate monthly report", Category: "finance", Trigger: "End of month", Action: "Generate expense report", TimeSaved: 120, Icon: "credit-card"},
	{ID: "t8", Name: "Social media scheduling", Description: "Queue posts across platforms from a single spreadsheet", Category: "marketing", Trigger: "New row in spreadsheet", Action: "Schedule social posts", TimeSaved: 40, Icon: "share-2"},
	{ID: "t9", Name: "Meeting notes to tasks", Description: "Transcribe meetings and create action items in project management tool", Category: "operations", Trigger: "Meeting ends", Action: "Create tasks from notes", TimeSaved: 25, Icon: "clipboard"},
	{ID: "t10", Name: "PTO request workflow", Description: "Route PTO requests for approval and update team calendar", Category: "hr", Trigger: "PTO form submitted", Action: "Route for approval", TimeSaved: 15, Icon: "calendar"},
	{ID: "t11", Name: "Daily standup summary", Description: "Collect team updates and post daily summary to channel", Category: "operations", Trigger: "Daily at 10 AM", Action: "Post summary to Slack", TimeSaved: 15, Icon: "clock"},
	{ID: "t12", Name: "Lead scoring automation", Description: "Score incoming leads based on engagement and notify sales team", Category: "sales", Trigger: "New lead activity", Action: "Score + notify team", TimeSaved: 50, Icon: "target"},
}

// All returns a copy of the full catalog.
func All() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// ByCategory filters the catalog. An empty category or "all" returns
// everything; an unknown category returns an empty list.
func ByCategory(category string) []Template {
	if category == "" || category == CategoryAll {
		return All()
	}
	out := make([]Template, 0, len(templates))
	for _, t := range templates {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Find looks a template up by id.
func Find(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
