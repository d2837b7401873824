// Package constants holds the names shared between configuration and wiring code.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Push transports
const (
	PushProviderWebPush = "webpush"
	PushProviderFCM     = "fcm"
	PushProviderQueue   = "queue"
)

// Subscription store providers
const (
	StoreProviderMemory   = "memory"
	StoreProviderRedis    = "redis"
	StoreProviderPostgres = "postgres"
)
