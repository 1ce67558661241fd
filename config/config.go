package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"raahi/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultTokenTTL = 12 * time.Hour

	defaultCountdown        = 30 * time.Second
	defaultDispatchCooldown = 2 * time.Minute
	defaultLocationTimeout  = 10 * time.Second
	defaultEmergencyNumber  = "112"
	defaultAlertListLimit   = 50
	maxAlertListLimit       = 500
	defaultRateLimitWindow  = 15 * time.Minute
	defaultRateLimitMax     = 10

	defaultMinRadius = 10.0
	defaultMaxRadius = 10000.0

	defaultWorkerPort = 8081

	defaultSlowQueryThreshold = 200 * time.Millisecond

	defaultQRCodeSize     = 256
	defaultMapURLTemplate = "https://www.google.com/maps?q=%f,%f"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase configuration for identity, Firestore, realtime mirror and push
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Storage selects the alert and geofence backend
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Panic configuration for the alert pipeline and the device countdown
	Panic *PanicConfig `json:"panic" yaml:"panic"`

	// Geofences configuration for radius bounds and the configured zones
	Geofences *GeofencesConfig `json:"geofences" yaml:"geofences"`

	// QRCode configuration for alert responder QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Worker configuration for the alert fan-out worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Provider is "firebase" (ID tokens) or "jwt" (HS256 operator tokens)
	Provider string `json:"provider" yaml:"provider"`

	// Secret signs and verifies HS256 tokens for the jwt provider
	Secret string `json:"secret" yaml:"secret"`

	// Issuer is stamped into and required from HS256 tokens
	Issuer string `json:"issuer" yaml:"issuer"`

	// TokenTTL is the lifetime of issued HS256 tokens
	TokenTTL time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	DatabaseURL     string `json:"databaseUrl" yaml:"databaseUrl"`
}

// StorageConfig selects the persistence backend
type StorageConfig struct {
	// Provider is "firestore", "postgres" or "memory"
	Provider string `json:"provider" yaml:"provider"`

	// AutoMigrate creates the postgres tables on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold marks postgres queries worth a warning
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// PanicConfig defines the panic alert pipeline
type PanicConfig struct {
	// CountdownDuration must elapse uninterrupted before a device dispatches
	CountdownDuration time.Duration `json:"countdownDuration" yaml:"countdownDuration"`

	// DispatchCooldown keeps a device in Dispatched before a new alert may start
	DispatchCooldown time.Duration `json:"dispatchCooldown" yaml:"dispatchCooldown"`

	// LocationTimeout bounds location acquisition while dispatching
	LocationTimeout time.Duration `json:"locationTimeout" yaml:"locationTimeout"`

	// EmergencyNumber is dialled on every dispatch
	EmergencyNumber string `json:"emergencyNumber" yaml:"emergencyNumber"`

	// DefaultListLimit and MaxListLimit bound operator listings
	DefaultListLimit int `json:"defaultListLimit" yaml:"defaultListLimit"`
	MaxListLimit     int `json:"maxListLimit" yaml:"maxListLimit"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// RateLimitConfig throttles POST /emergency/panic per client IP
type RateLimitConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Max requests allowed per Window
	Max int `json:"max" yaml:"max"`

	Window time.Duration `json:"window" yaml:"window"`
}

// GeofencesConfig defines geofence bounds and the configured zones
type GeofencesConfig struct {
	MinRadius float64                `json:"minRadius" yaml:"minRadius"`
	MaxRadius float64                `json:"maxRadius" yaml:"maxRadius"`
	Static    []StaticGeofenceConfig `json:"static" yaml:"static"`
}

// StaticGeofenceConfig is one configured zone
type StaticGeofenceConfig struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Radius    float64 `json:"radius" yaml:"radius"`
	Type      string  `json:"type" yaml:"type"`
	Color     string  `json:"color" yaml:"color"`
	IsActive  *bool   `json:"isActive" yaml:"isActive"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// MapURLTemplate receives latitude and longitude via fmt verbs
	MapURLTemplate string `json:"mapUrlTemplate" yaml:"mapUrlTemplate"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines the alert fan-out worker
type WorkerConfig struct {
	// Port of the push endpoint; the API keeps http.port
	Port int `json:"port" yaml:"port"`

	// NotificationTopic is the FCM topic operators subscribe to
	NotificationTopic string `json:"notificationTopic" yaml:"notificationTopic"`

	// MirrorLiveAlerts enables the realtime database copy under live_alerts
	MirrorLiveAlerts bool `json:"mirrorLiveAlerts" yaml:"mirrorLiveAlerts"`
}

// EnvPrefix marks environment variables that override the YAML file, e.g.
// RAAHI_PANIC_COUNTDOWNDURATION=10s sets panic.countdownDuration.
const EnvPrefix = "RAAHI_"

// LoadWithEnv reads <name>.yaml from the first search path that has it and
// overlays RAAHI_ environment variables on top.
func LoadWithEnv[T any](name string, searchPaths ...string) (*T, error) {
	configFile, err := findConfigFile(name+".yaml", searchPaths)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", configFile)
	}

	// Env keys are upper snake case; map each segment back onto the YAML
	// key it names so POSTGRES_SSLMODE lands on postgres.sslMode.
	fileKeys := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(strings.TrimPrefix(key, EnvPrefix), fileKeys), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load environment overrides")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", configFile)
	}

	return cfg, nil
}

// findConfigFile looks in the working directory first, then in each search
// path relative to it.
func findConfigFile(fileName string, searchPaths []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve working directory")
	}

	candidates := []string{filepath.Join(defaultPath, fileName)}
	for _, path := range searchPaths {
		candidates = append(candidates, filepath.Join(wd, path, fileName))
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", fileName, strings.Join(candidates, ", "))
}

// New loads config.yaml for the binaries, which run from the repo root, a
// cmd directory or a package directory under test.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills optional sections so callers never nil-check them.
func applyDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.SlowQueryThreshold == 0 {
		cfg.Storage.SlowQueryThreshold = defaultSlowQueryThreshold
	}

	if cfg.Panic == nil {
		cfg.Panic = &PanicConfig{}
	}
	cfg.Panic.applyDefaults()

	if cfg.Geofences == nil {
		cfg.Geofences = &GeofencesConfig{}
	}
	if cfg.Geofences.MinRadius == 0 {
		cfg.Geofences.MinRadius = defaultMinRadius
	}
	if cfg.Geofences.MaxRadius == 0 {
		cfg.Geofences.MaxRadius = defaultMaxRadius
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size == 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.MapURLTemplate == "" {
		cfg.QRCode.MapURLTemplate = defaultMapURLTemplate
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
	if cfg.Worker.NotificationTopic == "" {
		cfg.Worker.NotificationTopic = constants.OperatorsTopic
	}
}

func (p *PanicConfig) applyDefaults() {
	if p.CountdownDuration <= 0 {
		p.CountdownDuration = defaultCountdown
	}
	if p.DispatchCooldown <= 0 {
		p.DispatchCooldown = defaultDispatchCooldown
	}
	if p.LocationTimeout <= 0 {
		p.LocationTimeout = defaultLocationTimeout
	}
	if p.EmergencyNumber == "" {
		p.EmergencyNumber = defaultEmergencyNumber
	}
	if p.DefaultListLimit <= 0 {
		p.DefaultListLimit = defaultAlertListLimit
	}
	if p.MaxListLimit <= 0 {
		p.MaxListLimit = maxAlertListLimit
	}
	if p.RateLimit.Window <= 0 {
		p.RateLimit.Window = defaultRateLimitWindow
	}
	if p.RateLimit.Max <= 0 {
		p.RateLimit.Max = defaultRateLimitMax
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// replicasFromEnv reads read replicas for the alert store, numbered from 0:
// RAAHI_POSTGRES_REPLICAS_0_HOST, _PORT, _USERNAME and _PASSWORD. Listing
// stops at the first index without a host and port.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig
	for i := 0; ; i++ {
		prefix := EnvPrefix + "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host, port := getenv(prefix+"HOST"), getenv(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: getenv(prefix + "USERNAME"),
			Password: getenv(prefix + "PASSWORD"),
		})
	}
}
