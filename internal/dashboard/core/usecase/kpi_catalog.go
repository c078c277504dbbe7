package usecase

import "insights-api/internal/dashboard/core/domain"

// KPICatalog assembles the headline metrics block. The four entries, their
// labels, icon names and format tags are part of the client contract.
type KPICatalog struct{}

// Build returns the catalog in display order.
func (KPICatalog) Build() []domain.KPI {
	return []domain.KPI{
		{Label: "Total Users", Value: 23540, Delta: 4.2, Icon: "Users", Format: domain.FormatNumber},
		{Label: "Active Sessions", Value: 5821, Delta: 2.1, Icon: "Activity", Format: domain.FormatNumber},
		{Label: "Conversion Rate", Value: 7.8, Delta: -0.6, Icon: "TrendingUp", Format: domain.FormatPercent},
		{Label: "MRR", Value: 48250, Delta: 5.4, Icon: "CreditCard", Format: domain.FormatCurrency},
	}
}
