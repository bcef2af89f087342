package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"realestate-lending/internal/domain/lending"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppPort string

	// mysql (default), postgres or sqlite
	DBDriver   string
	DBLogLevel string
	// Used as-is for postgres and sqlite; mysql builds its DSN from the parts below.
	DatabaseDSN string
	AutoMigrate bool

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	IdempTTLSecs int

	LogLevel  string
	LogFormat string

	SignerKey string
	ChainID   int64

	KafkaBrokers []string
	KafkaTopic   string

	OperatorJWTSecret string

	LendingConfigPath string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:    getenv("APP_PORT", "8080"),
		DBDriver:   getenv("DB_DRIVER", "mysql"),
		DBLogLevel: getenv("DB_LOG_LEVEL", "warn"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		AutoMigrate: os.Getenv("DB_AUTO_MIGRATE") == "true",
		MySQLHost:   getenv("MYSQL_HOST", "mysql"),
		MySQLPort:   getenv("MYSQL_PORT", "3306"),
		MySQLDB:     getenv("MYSQL_DB", "lending"),
		MySQLUser:   getenv("MYSQL_USER", "lending"),
		MySQLPass:   getenv("MYSQL_PASS", "lending"),

		RedisAddr:     getenv("REDIS_ADDR", "redis:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		IdempTTLSecs:  300,

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),

		SignerKey: os.Getenv("SIGNER_PRIVATE_KEY"),
		ChainID:   31337,

		KafkaTopic: getenv("KAFKA_TOPIC", "lending.payments"),

		OperatorJWTSecret: os.Getenv("OPERATOR_JWT_SECRET"),
		LendingConfigPath: os.Getenv("LENDING_CONFIG_PATH"),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	if v := os.Getenv("CHAIN_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.ChainID = n
		}
	}
	for _, b := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			c.KafkaBrokers = append(c.KafkaBrokers, b)
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case "mysql":
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		// ensure port is valid
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case "postgres", "sqlite":
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for DB_DRIVER=%s", c.DBDriver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("IDEMPOTENCY_TTL_SECONDS must be positive, got %d", c.IdempTTLSecs)
	}
	if c.ChainID <= 0 {
		return fmt.Errorf("CHAIN_ID must be positive, got %d", c.ChainID)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// DSN is what the configured driver should be opened with.
func (c *Config) DSN() string {
	if c.DBDriver == "mysql" {
		return c.MySQLDSN()
	}
	return c.DatabaseDSN
}

// lendingFile mirrors the YAML overlay. Decimals are strings so values like
// 0.085 stay exact; absent keys keep their defaults.
type lendingFile struct {
	LTV struct {
		Base                   string `yaml:"base"`
		HighRiskLocationMarker string `yaml:"high_risk_location_marker"`
		HighRiskLocationFactor string `yaml:"high_risk_location_factor"`
		PriorDefaultFactor     string `yaml:"prior_default_factor"`
	} `yaml:"ltv"`
	Rates struct {
		LenderAPY        string `yaml:"lender_apy"`
		BorrowerAPR      string `yaml:"borrower_apr"`
		PlatformFeeShare string `yaml:"platform_fee_share"`
		SecondsPerYear   int64  `yaml:"seconds_per_year"`
	} `yaml:"rates"`
	Risk struct {
		Base        *int   `yaml:"base"`
		PerDefault  *int   `yaml:"per_default"`
		PerSuccess  *int   `yaml:"per_success"`
		SuccessCap  *int   `yaml:"success_cap"`
		Threshold   *int   `yaml:"threshold"`
		DefaultRate string `yaml:"default_rate"`
	} `yaml:"risk"`
	ExcessPayment string `yaml:"excess_payment"`
}

// LendingParams returns the defaults overlaid with LENDING_CONFIG_PATH, if set.
func (c *Config) LendingParams() (lending.Params, error) {
	p := lending.DefaultParams()
	if c.LendingConfigPath == "" {
		return p, nil
	}
	raw, err := os.ReadFile(c.LendingConfigPath)
	if err != nil {
		return p, fmt.Errorf("read lending config: %w", err)
	}
	return ParseLendingParams(raw)
}

func ParseLendingParams(raw []byte) (lending.Params, error) {
	p := lending.DefaultParams()
	var f lendingFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return p, fmt.Errorf("parse lending config: %w", err)
	}

	decs := []struct {
		name string
		src  string
		dst  *decimal.Decimal
	}{
		{"ltv.base", f.LTV.Base, &p.BaseLTV},
		{"ltv.high_risk_location_factor", f.LTV.HighRiskLocationFactor, &p.HighRiskLocationFactor},
		{"ltv.prior_default_factor", f.LTV.PriorDefaultFactor, &p.PriorDefaultFactor},
		{"rates.lender_apy", f.Rates.LenderAPY, &p.LenderAPY},
		{"rates.borrower_apr", f.Rates.BorrowerAPR, &p.BorrowerAPR},
		{"rates.platform_fee_share", f.Rates.PlatformFeeShare, &p.PlatformFeeShare},
		{"risk.default_rate", f.Risk.DefaultRate, &p.AssumedDefaults},
	}
	for _, d := range decs {
		if d.src == "" {
			continue
		}
		v, err := decimal.NewFromString(d.src)
		if err != nil {
			return p, fmt.Errorf("%s: %w", d.name, err)
		}
		*d.dst = v
	}

	if f.LTV.HighRiskLocationMarker != "" {
		p.HighRiskLocationMarker = f.LTV.HighRiskLocationMarker
	}
	if f.Rates.SecondsPerYear != 0 {
		p.SecondsPerYear = f.Rates.SecondsPerYear
	}
	ints := []struct {
		src *int
		dst *int
	}{
		{f.Risk.Base, &p.RiskBase},
		{f.Risk.PerDefault, &p.RiskPerDefault},
		{f.Risk.PerSuccess, &p.RiskPerSuccess},
		{f.Risk.SuccessCap, &p.RiskSuccessCap},
		{f.Risk.Threshold, &p.RiskThreshold},
	}
	for _, i := range ints {
		if i.src != nil {
			*i.dst = *i.src
		}
	}
	if f.ExcessPayment != "" {
		p.Excess = lending.ExcessPolicy(strings.ToLower(f.ExcessPayment))
	}

	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("lending config: %w", err)
	}
	return p, nil
}
