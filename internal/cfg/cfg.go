package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/artlens-app/go-backend/pkg/e"
	"github.com/artlens-app/go-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Http     *HTTPConfig
	Db       *PGDBCfg
	Qdrant   *QdrantCfg
	Redis    *RedisCfg
	Minio    *MinIOCfg
	Kafka    *KafkaCfg
	Embedder *EmbedderCfg
	Vision   *VisionCfg
	Scan     *ScanCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type PGDBCfg struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type QdrantCfg struct {
	Port           int
	Host           string
	ApiKey         string
	CollectionName string // имя коллекции эмбеддингов произведений
	UseTLS         bool
	VectorSize     uint64
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	SiteTTL     time.Duration // TTL кэша списка площадок
	ArtworkTTL  time.Duration // TTL кэша карточек произведений
}

type MinIOCfg struct {
	MinioEndpoint     string
	BucketName        string
	MinioRootUser     string
	MinioRootPassword string
	MinioUseSSL       bool
	PublicBaseURL     string // база публичных ссылок на загруженные сканы
}

type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

// EmbedderCfg — настройки HTTP-клиента embedding-сервиса (CLIP sidecar).
type EmbedderCfg struct {
	BaseURL    string
	MaxRetries int
	Timeout    time.Duration
}

// VisionCfg — настройки клиента vision-анализа (OpenAI).
type VisionCfg struct {
	APIKey     string
	Model      string
	MaxRetries int
}

// ScanCfg — параметры ядра сканирования.
type ScanCfg struct {
	// DistanceThreshold — порог косинусной дистанции T: кандидат считается
	// совпадением только при distance < T (строго).
	DistanceThreshold float64
	AnonymousUserID   string
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	db, err := loadPGDBCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	qdrant, err := loadQdrantCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	embedder, err := loadEmbedderCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	vision, err := loadVisionCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	scan, err := loadScanCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:     http,
		Db:       db,
		Qdrant:   qdrant,
		Redis:    redis,
		Minio:    minio,
		Kafka:    kafka,
		Embedder: embedder,
		Vision:   vision,
		Scan:     scan,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 10 * time.Second
		defaultWriteTimeout = 30 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost    = "localhost"
		defaultPort    = "5432"
		defaultSSLMode = "disable"
	)

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	return &PGDBCfg{
		Host:     getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:     getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:     user,
		Password: password,
		DBName:   dbName,
		SSLMode:  getEnvOrDefault("SSL_MODE", defaultSSLMode),
	}, nil
}

func loadQdrantCfg(logger logger.Logger) (*QdrantCfg, error) {
	const (
		defaultQdrantGRPCPort = "6334"
		defaultUseTLS         = false
		defaultCollection     = "artworks"
		defaultVectorSize     = "512"
	)

	strPort := getEnvOrDefault("QDRANT_GRPC_PORT", defaultQdrantGRPCPort)
	port, err := strconv.Atoi(strPort)
	if err != nil {
		logger.Errorf(err, "invalid QDRANT_GRPC_PORT")
		return nil, err
	}

	useTLS, err := strconv.ParseBool(getEnvOrDefault("QDRANT_USE_TLS", strconv.FormatBool(defaultUseTLS)))
	if err != nil {
		logger.Errorf(err, "invalid QDRANT_USE_TLS")
		return nil, err
	}

	strVectorSize := getEnvOrDefault("VECTOR_SIZE", defaultVectorSize)
	vectorSize, err := strconv.ParseUint(strVectorSize, 10, 64)
	if err != nil {
		logger.Errorf(err, "invalid VECTOR_SIZE")
		return nil, err
	}

	return &QdrantCfg{
		Host:           getEnvOrDefault("QDRANT_HOST", "localhost"),
		Port:           port,
		ApiKey:         getEnv("QDRANT__SERVICE__API_KEY"),
		CollectionName: getEnvOrDefault("COLLECTION_NAME", defaultCollection),
		UseTLS:         useTLS,
		VectorSize:     vectorSize,
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
		defaultSiteTTL      = 5 * time.Minute
		defaultArtworkTTL   = 3 * time.Minute
	)

	addr := getEnvOrDefault("REDIS_ADDR", defaultAddr)
	password := getEnv("REDIS_PASSWORD")
	user := getEnv("REDIS_USER")

	dbStr := getEnvOrDefault("REDIS_DB_ID", strconv.Itoa(defaultDB))
	db, err := strconv.Atoi(dbStr)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetriesStr := getEnvOrDefault("MAX_RETRIES", strconv.Itoa(defaultMaxRetries))
	maxRetries, err := strconv.Atoi(maxRetriesStr)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	siteTTL, err := parseDurationEnv("SITE_CACHE_TTL", defaultSiteTTL)
	if err != nil {
		log.Errorf(err, "invalid SITE_CACHE_TTL")
		return nil, err
	}

	artworkTTL, err := parseDurationEnv("ARTWORK_CACHE_TTL", defaultArtworkTTL)
	if err != nil {
		log.Errorf(err, "invalid ARTWORK_CACHE_TTL")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        addr,
		Password:    password,
		User:        user,
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
		SiteTTL:     siteTTL,
		ArtworkTTL:  artworkTTL,
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL   = false
		defaultEndpoint = "minio:9000"
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	endpoint := getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint)

	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	return &MinIOCfg{
		MinioEndpoint:     endpoint,
		BucketName:        getEnvOrDefault("BUCKET_NAME", "scans"),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		PublicBaseURL:     getEnvOrDefault("MINIO_PUBLIC_BASE_URL", scheme+"://"+endpoint),
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
		defaultTopic             = "catalog-events"
	)

	brokerStr := os.Getenv("KAFKA_BROKERS")
	if brokerStr == "" {
		return nil, fmt.Errorf("KAFKA_BROKERS environment variable is required")
	}
	brokers := strings.Split(brokerStr, ",")

	topic := getEnvOrDefault("KAFKA_TOPIC", defaultTopic)

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	networkMode := getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode)

	return &KafkaCfg{
		Brokers:           brokers,
		Topic:             topic,
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       networkMode,
	}, nil
}

func loadEmbedderCfg(log logger.Logger) (*EmbedderCfg, error) {
	const (
		defaultBaseURL    = "http://embedder:8000"
		defaultMaxRetries = 3
		defaultTimeout    = 30 * time.Second
	)

	maxRetries, err := parseIntEnv("EMBEDDER_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid EMBEDDER_MAX_RETRIES")
		return nil, err
	}

	timeout, err := parseDurationEnv("EMBEDDER_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid EMBEDDER_TIMEOUT")
		return nil, err
	}

	return &EmbedderCfg{
		BaseURL:    getEnvOrDefault("EMBEDDER_URL", defaultBaseURL),
		MaxRetries: maxRetries,
		Timeout:    timeout,
	}, nil
}

func loadVisionCfg(log logger.Logger) (*VisionCfg, error) {
	const (
		defaultModel      = "gpt-4o-mini"
		defaultMaxRetries = 3
	)

	apiKey := getEnv("OPENAI_API_KEY")
	if apiKey == "" {
		err := fmt.Errorf("OPENAI_API_KEY is required")
		log.Errorf(err, "missing OPENAI_API_KEY")
		return nil, err
	}

	maxRetries, err := parseIntEnv("VISION_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid VISION_MAX_RETRIES")
		return nil, err
	}

	return &VisionCfg{
		APIKey:     apiKey,
		Model:      getEnvOrDefault("VISION_MODEL", defaultModel),
		MaxRetries: maxRetries,
	}, nil
}

func loadScanCfg(log logger.Logger) (*ScanCfg, error) {
	const (
		defaultDistanceThreshold = "0.15"
		defaultAnonymousUserID   = "anonymous"
	)

	thresholdStr := getEnvOrDefault("SCAN_DISTANCE_THRESHOLD", defaultDistanceThreshold)
	threshold, err := strconv.ParseFloat(thresholdStr, 64)
	if err != nil {
		log.Errorf(err, "invalid SCAN_DISTANCE_THRESHOLD")
		return nil, err
	}

	if threshold <= 0 || threshold > 2 {
		err := fmt.Errorf("SCAN_DISTANCE_THRESHOLD must be in (0, 2], got %f", threshold)
		log.Errorf(err, "invalid SCAN_DISTANCE_THRESHOLD")
		return nil, err
	}

	return &ScanCfg{
		DistanceThreshold: threshold,
		AnonymousUserID:   getEnvOrDefault("ANONYMOUS_USER_ID", defaultAnonymousUserID),
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
