package routes

const (
	// Health
	Health = "/health"

	// Profile
	Me        = "/api/v1/me"
	UsersSync = "/api/v1/users/sync"

	// Units
	UnitsBase   = "/api/v1/units"
	UnitsSearch = "/api/v1/units/search"
	UnitsStats  = "/api/v1/units/stats"
	UnitsByID   = "/api/v1/units/{id}"

	// Tenants
	TenantsBase           = "/api/v1/tenants"
	TenantsSearch         = "/api/v1/tenants/search"
	TenantsStats          = "/api/v1/tenants/stats"
	TenantsAvailableUnits = "/api/v1/tenants/available-units"
	TenantsByID           = "/api/v1/tenants/{id}"
	TenantsHistory        = "/api/v1/tenants/{id}/history"
	TenantsMoveIn         = "/api/v1/tenants/{id}/move-in"
	TenantsMoveOut        = "/api/v1/tenants/{id}/move-out"

	// Payments
	PaymentsBase         = "/api/v1/payments"
	PaymentsSearch       = "/api/v1/payments/search"
	PaymentsStats        = "/api/v1/payments/stats"
	PaymentsStatsMonthly = "/api/v1/payments/stats/monthly"
	PaymentsOverdue      = "/api/v1/payments/overdue"
	PaymentsTenantUnits  = "/api/v1/payments/tenant-units"
	PaymentsByID         = "/api/v1/payments/{id}"
	PaymentsComplete     = "/api/v1/payments/{id}/complete"

	// Damage reports
	DamageReportsBase   = "/api/v1/damage-reports"
	DamageReportsSearch = "/api/v1/damage-reports/search"
	DamageReportsStats  = "/api/v1/damage-reports/stats"
	DamageReportsByID   = "/api/v1/damage-reports/{id}"
	DamageReportsRepair = "/api/v1/damage-reports/{id}/repair"

	// Reports
	ReportsPayments  = "/api/v1/reports/payments"
	ReportsOccupancy = "/api/v1/reports/occupancy"

	// Notifications
	NotificationsReminders     = "/api/v1/notifications/reminders"
	NotificationsRemindersScan = "/api/v1/notifications/reminders/scan"
	NotificationsSMS           = "/api/v1/notifications/sms"
)
