package cmd

type Config struct {
	HTTPPort               string
	PaymentProviderName    string
	PaymentProviderAPIKey  string
	BehaviorReportSchedule string
	GatewayHealthSchedule  string
}
