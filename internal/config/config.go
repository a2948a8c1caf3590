package config

import (
	"time"
)

// Default configuration values.
const (
	defaultServiceName     = "leadgate"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8090
	defaultReadTimeoutSec  = 30
	defaultWriteTimeoutSec = 30
	defaultIntakeRPS       = 10
	defaultIntakeBurst     = 20
	defaultWebDir          = "web"
	defaultLeadLogPath     = "data/leads.jsonl"
	defaultDBPort          = 5432
	defaultDBUser          = "postgres"
	defaultDBName          = "leadgate"
	defaultDBSSLMode       = "disable"
	defaultDBMaxConns      = 25
	defaultDBMaxIdleConns  = 5
	defaultESIndex         = "leadgate_high_leads"
	defaultESTimeoutSec    = 30
	defaultDupWindowHours  = 24
	defaultNotifyTimeout   = 10 * time.Second
	defaultNotifyAttempts  = 3
	defaultMailerTimeout   = 15 * time.Second
	defaultMailSubject     = "Thanks for reaching out"
	defaultMailBody        = "Thanks for your inquiry. We received your message and will get back to you within one business day."
	defaultLogLevel        = "info"
)

// Config holds all configuration for the leadgate service.
type Config struct {
	Service       ServiceConfig       `yaml:"service"`
	Intake        IntakeConfig        `yaml:"intake"`
	LeadLog       LeadLogConfig       `yaml:"lead_log"`
	Database      DatabaseConfig      `yaml:"database"`
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`
	Redis         RedisConfig         `yaml:"redis"`
	Notify        NotifyConfig        `yaml:"notify"`
	Mailer        MailerConfig        `yaml:"mailer"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name         string        `yaml:"name"`
	Version      string        `yaml:"version"`
	Port         int           `env:"LEADGATE_PORT" yaml:"port"`
	Debug        bool          `env:"APP_DEBUG"     yaml:"debug"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// IntakeConfig holds submission intake settings.
type IntakeConfig struct {
	// RatePerSecond and Burst bound how fast submissions are accepted.
	RatePerSecond int `yaml:"rate_per_second"`
	Burst         int `yaml:"burst"`
	// WebDir is the directory the intake form is served from.
	WebDir string `yaml:"web_dir"`
}

// LeadLogConfig holds the append-only lead log settings.
type LeadLogConfig struct {
	Path string `env:"LEADLOG_PATH" yaml:"path"`
}

// DatabaseConfig holds the optional signal-rules database. An empty host
// disables it and the built-in rule tables are used.
type DatabaseConfig struct {
	Host            string        `env:"POSTGRES_HOST"     yaml:"host"`
	Port            int           `env:"POSTGRES_PORT"     yaml:"port"`
	User            string        `env:"POSTGRES_USER"     yaml:"user"`
	Password        string        `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database        string        `env:"POSTGRES_DB"       yaml:"database"`
	SSLMode         string        `env:"POSTGRES_SSLMODE"  yaml:"sslmode"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// Enabled reports whether a rules database is configured.
func (d *DatabaseConfig) Enabled() bool { return d.Host != "" }

// ElasticsearchConfig holds the HIGH-lead document archive. An empty URL
// disables archiving.
type ElasticsearchConfig struct {
	URL      string        `env:"ELASTICSEARCH_URL" yaml:"url"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	Index    string        `yaml:"index"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Enabled reports whether the archive is configured.
func (e *ElasticsearchConfig) Enabled() bool { return e.URL != "" }

// RedisConfig holds the duplicate-submission marker store. An empty URL
// disables duplicate detection.
type RedisConfig struct {
	URL             string        `env:"REDIS_URL"      yaml:"url"`
	Password        string        `env:"REDIS_PASSWORD" yaml:"password"`
	Database        int           `yaml:"database"`
	DuplicateWindow time.Duration `yaml:"duplicate_window"`
}

// Enabled reports whether duplicate detection is configured.
func (r *RedisConfig) Enabled() bool { return r.URL != "" }

// NotifyConfig holds the notification webhook.
type NotifyConfig struct {
	WebhookURL  string        `env:"NOTIFY_WEBHOOK_URL" yaml:"webhook_url"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxAttempts int           `yaml:"max_attempts"`
}

// MailerConfig holds the email-relay API used for auto-acknowledgments.
// An empty URL disables auto-responses.
type MailerConfig struct {
	URL     string        `env:"MAILER_URL"     yaml:"url"`
	APIKey  string        `env:"MAILER_API_KEY" yaml:"api_key"`
	From    string        `yaml:"from"`
	Subject string        `yaml:"subject"`
	Body    string        `yaml:"body"`
	Timeout time.Duration `yaml:"timeout"`
}

// Enabled reports whether the mailer is configured.
func (m *MailerConfig) Enabled() bool { return m.URL != "" }

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL" yaml:"level"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return loadWithDefaults[Config](path, setDefaults)
}

func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setIntakeDefaults(&cfg.Intake)
	setLeadLogDefaults(&cfg.LeadLog)
	setDatabaseDefaults(&cfg.Database)
	setElasticsearchDefaults(&cfg.Elasticsearch)
	setRedisDefaults(&cfg.Redis)
	setNotifyDefaults(&cfg.Notify)
	setMailerDefaults(&cfg.Mailer)
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = defaultReadTimeoutSec * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = defaultWriteTimeoutSec * time.Second
	}
}

func setIntakeDefaults(i *IntakeConfig) {
	if i.RatePerSecond == 0 {
		i.RatePerSecond = defaultIntakeRPS
	}
	if i.Burst == 0 {
		i.Burst = defaultIntakeBurst
	}
	if i.WebDir == "" {
		i.WebDir = defaultWebDir
	}
}

func setLeadLogDefaults(l *LeadLogConfig) {
	if l.Path == "" {
		l.Path = defaultLeadLogPath
	}
}

func setDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = defaultDBPort
	}
	if d.User == "" {
		d.User = defaultDBUser
	}
	if d.Database == "" {
		d.Database = defaultDBName
	}
	if d.SSLMode == "" {
		d.SSLMode = defaultDBSSLMode
	}
	if d.MaxConnections == 0 {
		d.MaxConnections = defaultDBMaxConns
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = defaultDBMaxIdleConns
	}
	if d.ConnMaxLifetime == 0 {
		d.ConnMaxLifetime = time.Hour
	}
}

func setElasticsearchDefaults(e *ElasticsearchConfig) {
	if e.Index == "" {
		e.Index = defaultESIndex
	}
	if e.Timeout == 0 {
		e.Timeout = defaultESTimeoutSec * time.Second
	}
}

func setRedisDefaults(r *RedisConfig) {
	if r.DuplicateWindow == 0 {
		r.DuplicateWindow = defaultDupWindowHours * time.Hour
	}
}

func setNotifyDefaults(n *NotifyConfig) {
	if n.Timeout == 0 {
		n.Timeout = defaultNotifyTimeout
	}
	if n.MaxAttempts == 0 {
		n.MaxAttempts = defaultNotifyAttempts
	}
}

func setMailerDefaults(m *MailerConfig) {
	if m.Subject == "" {
		m.Subject = defaultMailSubject
	}
	if m.Body == "" {
		m.Body = defaultMailBody
	}
	if m.Timeout == 0 {
		m.Timeout = defaultMailerTimeout
	}
}
