package config

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config 仪表盘服务的运行配置，全部来自环境变量
type Config struct {
	ListenAddr     string        // 监听地址
	BackendURL     string        // 上游灌溉管理后端的基础地址
	RequestTimeout time.Duration // 单次上游请求的超时
	CookieName     string        // 会话Cookie名
	CacheTTL       time.Duration // GET 请求缓存的生存期
	GinMode        string        // gin 运行模式
}

// Load 读取配置，.env 文件存在时先加载，缺失的项使用默认值
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:     getenv("PANEL_LISTEN_ADDR", ":8080"),
		BackendURL:     getenv("PANEL_BACKEND_URL", "http://localhost:9090"),
		RequestTimeout: getenvDuration("PANEL_REQUEST_TIMEOUT", 10*time.Second),
		CookieName:     getenv("PANEL_COOKIE_NAME", "riego_token"),
		CacheTTL:       getenvDuration("PANEL_CACHE_TTL", 30*time.Second),
		GinMode:        getenv("PANEL_GIN_MODE", gin.ReleaseMode),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
