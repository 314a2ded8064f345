package models

// CategoryOption is the shape the admin UI uses for its category selector.
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// CategoryCatalog is the fixed set of FAQ categories, in display order.
var CategoryCatalog = []CategoryOption{
	{Value: "general", Label: "General", Icon: "❓"},
	{Value: "services", Label: "Services", Icon: "🔧"},
	{Value: "booking", Label: "Booking & Orders", Icon: "📅"},
	{Value: "payment", Label: "Payment & Pricing", Icon: "💳"},
	{Value: "vendors", Label: "Vendors", Icon: "👷"},
	{Value: "referral", Label: "Referral & Points", Icon: "🎁"},
	{Value: "account", Label: "Account", Icon: "👤"},
	{Value: "cea", Label: "CEA Agents", Icon: "🏠"},
}

// EmptyCategories returns one FAQCategory per catalog entry, each with no FAQs.
func EmptyCategories() []FAQCategory {
	out := make([]FAQCategory, 0, len(CategoryCatalog))
	for _, c := range CategoryCatalog {
		out = append(out, FAQCategory{ID: c.Value, Title: c.Label, Icon: c.Icon, FAQs: []FAQEntry{}})
	}
	return out
}
