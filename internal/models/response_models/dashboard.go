package response_models

import "time"

type DashboardReport struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Totals      Totals    `json:"totals"`
	// NewAccounts counts sign ups in the last 30 days.
	NewAccounts int64 `json:"newAccounts"`
}

type Totals struct {
	Accounts     int64 `json:"accounts"`
	Categories   int64 `json:"categories"`
	Destinations int64 `json:"destinations"`
	Attractions  int64 `json:"attractions"`
	Hotels       int64 `json:"hotels"`
	Reviews      int64 `json:"reviews"`
}

type CheckoutContext struct {
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"sessionExpiresAt"`
}
