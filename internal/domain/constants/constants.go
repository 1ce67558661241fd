// Package constants holds string values shared between configuration and code.
package constants

const (
	// EnvDevelop is the env name used on developer machines.
	EnvDevelop = "develop"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage providers
const (
	StorageProviderFirestore = "firestore"
	StorageProviderPostgres  = "postgres"
	StorageProviderMemory    = "memory"
)

// Identity providers
const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

// OperatorsTopic is the FCM topic control-room devices subscribe to.
const OperatorsTopic = "operators"
