package internal

import "time"

type Config struct {
	Host string `env:"HOST,required=true"`
	Port int    `env:"PORT,required=true"`

	NatsURL       string        `env:"NATS_URL,required=true"`
	RPCTimeout    time.Duration `env:"RPC_TIMEOUT,required=true"`
	RedisAddr     string        `env:"REDIS_ADDR,required=true"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	StatusTTL     time.Duration `env:"STATUS_TTL,required=true"`

	JWTSecret string `env:"JWT_SECRET,required=true"`

	BufferSize      int           `env:"BUFFER_SIZE,required=true"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,required=true"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,required=true"`

	TickPeriod      time.Duration `env:"TICK_PERIOD,required=true"`
	EmptyAbortTicks int           `env:"EMPTY_ABORT_TICKS,required=true"`
	OfflineGrace    time.Duration `env:"OFFLINE_GRACE,required=true"`

	CommandRate   float64       `env:"COMMAND_RATE,required=true"`
	CommandBurst  int           `env:"COMMAND_BURST,required=true"`
	UpgradesPerIP float64       `env:"UPGRADES_PER_IP,required=true"`
	UpgradeBurst  int           `env:"UPGRADE_BURST,required=true"`

	NodeID            string        `env:"NODE_ID,required=true"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,required=true"`

	LogLevel string `env:"LOG_LEVEL,required=true"`
}
