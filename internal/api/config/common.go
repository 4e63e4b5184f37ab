package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Archive  ArchiveConfig  `mapstructure:"archive"`
	Feed     FeedConfig     `mapstructure:"feed"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// MongoConfig 文档库配置
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Producer ProducerConfig `mapstructure:"producer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ProducerConfig struct {
	Topic        string `mapstructure:"topic"`
	MaxRetry     int    `mapstructure:"max_retry"`
	TimeoutSec   int    `mapstructure:"timeout_sec"`
	RequiredAcks int    `mapstructure:"required_acks"`
}

// LogstashConfig 远端日志配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// ArchiveConfig 归档任务配置
type ArchiveConfig struct {
	// Spec robfig/cron 表达式（带秒），默认每天凌晨四点
	Spec string `mapstructure:"spec"`
}

// FeedConfig 信息流配置
type FeedConfig struct {
	BatchSize        int `mapstructure:"batch_size"`
	LeaderboardLimit int `mapstructure:"leaderboard_limit"`
}
