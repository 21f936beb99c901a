package config

// Environment Variable Keys
const (
	// EnvConfigDir 定義設定檔所在目錄 (預設 ./config)
	EnvConfigDir = "CONFIG_DIR"

	// EnvAppEnv 定義應用程式執行環境 (local, dev, prod)
	EnvAppEnv = "APP_ENV"

	// EnvPort 定義 HTTP/Websocket 服務 Port
	EnvPort = "PORT"

	// EnvGrpcPort 定義 gRPC Health 服務 Port
	EnvGrpcPort = "GRPC_PORT"

	// EnvStorageDriver 定義房間儲存方式 (memory, mysql)
	EnvStorageDriver = "STORAGE_DRIVER"

	// EnvRedisEnabled 是否啟用 Redis 進度發布
	EnvRedisEnabled = "REDIS_ENABLED"

	// EnvRedisAddr 定義 Redis 服務地址 (host:port)
	EnvRedisAddr = "REDIS_ADDR"

	// EnvRedisPassword 定義 Redis 密碼
	EnvRedisPassword = "REDIS_PASSWORD"

	// EnvMySQLHost 定義 MySQL 主機
	EnvMySQLHost = "MYSQL_HOST"

	// EnvMySQLUser 定義 MySQL 使用者
	EnvMySQLUser = "MYSQL_USER"

	// EnvMySQLDB 定義 MySQL 資料庫名稱
	EnvMySQLDB = "MYSQL_DB"

	// EnvMySQLPort 定義 MySQL Port
	EnvMySQLPort = "MYSQL_PORT"

	// EnvMySQLPassword 定義 MySQL 密碼
	EnvMySQLPassword = "MYSQL_PASSWORD"

	// EnvTurnDelayMs 定義對戰回合間隔 (毫秒)
	EnvTurnDelayMs = "SESSION_TURN_DELAY_MS"
)
