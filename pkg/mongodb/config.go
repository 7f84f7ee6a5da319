package mongodb

import "time"

// Transaction modes, mirrored from the MONGODB_TRANSACTIONS setting.
const (
	TransactionsAuto = "auto"
	TransactionsOn   = "on"
	TransactionsOff  = "off"
)

type MongoDbConfigModel struct {
	ConnectionUrl  string
	DatabaseName   string
	ConnectTimeout time.Duration
	// Transactions selects whether multi-document transactions are used.
	// "auto" probes the deployment with the hello command.
	Transactions string
}
