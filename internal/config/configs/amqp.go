package configs

// AMQP configures publishing of ledger events to RabbitMQ. An empty URL
// disables publishing; events are still kept in the ledger's own log.
type AMQP struct {
	URL      string `env:"URL"`
	Exchange string `env:"EXCHANGE" envDefault:"ledger_events"`
}

// Enabled reports whether a broker URL is configured.
func (c AMQP) Enabled() bool {
	return c.URL != ""
}
