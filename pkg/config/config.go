package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Password  PasswordConfig
	Delivery  DeliveryConfig
	Cart      CartConfig
	Franchise FranchiseConfig
	Business  BusinessConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CRUSTCRAFT_APP_ENV" required:"true"`
	Port         string `envconfig:"CRUSTCRAFT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"CRUSTCRAFT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CRUSTCRAFT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CRUSTCRAFT_DB_DSN"`
	Driver string `envconfig:"CRUSTCRAFT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CRUSTCRAFT_DB_HOST"`
	LegacyPort     int    `envconfig:"CRUSTCRAFT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CRUSTCRAFT_DB_USER"`
	LegacyPassword string `envconfig:"CRUSTCRAFT_DB_PASSWORD"`
	LegacyName     string `envconfig:"CRUSTCRAFT_DB_NAME"`
	LegacySSLMode  string `envconfig:"CRUSTCRAFT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CRUSTCRAFT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CRUSTCRAFT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CRUSTCRAFT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CRUSTCRAFT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CRUSTCRAFT_REDIS_URL" required:"true"`
	Address      string        `envconfig:"CRUSTCRAFT_REDIS_ADDR"`
	Password     string        `envconfig:"CRUSTCRAFT_REDIS_PASSWORD"`
	DB           int           `envconfig:"CRUSTCRAFT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CRUSTCRAFT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CRUSTCRAFT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CRUSTCRAFT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CRUSTCRAFT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CRUSTCRAFT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"CRUSTCRAFT_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"CRUSTCRAFT_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"CRUSTCRAFT_JWT_EXPIRATION_MINUTES" default:"720"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"CRUSTCRAFT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"CRUSTCRAFT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"CRUSTCRAFT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"CRUSTCRAFT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"CRUSTCRAFT_ARGON_KEY_LEN" default:"32"`
}

// DeliveryConfig is the single delivery-fee policy applied everywhere a fee
// is computed or rendered. FreeAboveRupees <= 0 disables the free tier.
type DeliveryConfig struct {
	FlatFeeRupees   int `envconfig:"CRUSTCRAFT_DELIVERY_FLAT_FEE" default:"30"`
	FreeAboveRupees int `envconfig:"CRUSTCRAFT_DELIVERY_FREE_ABOVE" default:"299"`
}

type CartConfig struct {
	SessionTTL time.Duration `envconfig:"CRUSTCRAFT_CART_SESSION_TTL" default:"72h"`
}

type FranchiseConfig struct {
	SubmitWindow  time.Duration `envconfig:"CRUSTCRAFT_FRANCHISE_SUBMIT_WINDOW" default:"1h"`
	SubmitIPLimit int           `envconfig:"CRUSTCRAFT_FRANCHISE_SUBMIT_IP_LIMIT" default:"3"`
}

type BusinessConfig struct {
	Name string `envconfig:"CRUSTCRAFT_BUSINESS_NAME" default:"CrustCraft Pizza"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
