package config

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	ChannelSMTP     = "smtp"
	ChannelGmail    = "gmail"
	ChannelTelegram = "telegram"
)
