package model

type InjectionStatus string

const (
	InjectionSuccess InjectionStatus = "success"
	InjectionFailed  InjectionStatus = "failed"
)

func (s InjectionStatus) String() string {
	return string(s)
}

type TopupStatus string

const (
	TopupPending   TopupStatus = "pending"
	TopupConfirmed TopupStatus = "confirmed"
)

func (s TopupStatus) String() string {
	return string(s)
}

// SettingInjectionCost is the admin_settings key overriding the configured
// per-injection point cost.
const SettingInjectionCost = "injection_cost_points"
