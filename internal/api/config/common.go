package config

// Config 配置主体
type Config struct {
	Server              ServerConfig       `mapstructure:"server"`
	DB                  DBConfig           `mapstructure:"database"`
	Redis               RedisConfig        `mapstructure:"redis"`
	JWT                 JWTConfig          `mapstructure:"jwt"`
	Logstash            LogstashConfig     `mapstructure:"logstash"`
	MinIO               MinIOConfig        `mapstructure:"minio"`
	Elastic             ElasticConfig      `mapstructure:"elastic"`
	Mongo               MongoConfig        `mapstructure:"mongo"`
	Search              SearchConfig       `mapstructure:"search"`
	Cron                CronConfig         `mapstructure:"cron"`
	Kafka               KafkaConfig        `mapstructure:"kafka"`
	KafkaUserConsumer   KafkaTopicConsumer `mapstructure:"kafka_user_consumer"`
	KafkaLikeConsumer   KafkaTopicConsumer `mapstructure:"kafka_like_consumer"`
	KafkaFollowConsumer KafkaTopicConsumer `mapstructure:"kafka_follow_consumer"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// JWTConfig 登录令牌配置
type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	Issuer      string `mapstructure:"issuer"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	MainBucket string `mapstructure:"main_bucket"`
	UseSSL     bool   `mapstructure:"use_ssl"`
}

// ElasticConfig Elastic配置
type ElasticConfig struct {
	Address  string         `mapstructure:"address"`
	Username string         `mapstructure:"username"`
	Password string         `mapstructure:"password"`
	Indices  ElasticIndices `mapstructure:"indices"`
}

// ElasticIndices Elastic索引
type ElasticIndices struct {
	UserIndex string `mapstructure:"user_index"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// SearchConfig 用户搜索后端: db | elastic
type SearchConfig struct {
	Backend string `mapstructure:"backend"`
}

type CronConfig struct {
	LikeCountSpec string `mapstructure:"like_count_spec"`
}

type KafkaConfig struct {
	Enable   bool           `mapstructure:"enable"`
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaTopicConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}
