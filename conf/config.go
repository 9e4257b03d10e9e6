package conf

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Conf 保存配置的全局变量
var Conf = new(Config)

// Config 配置入口
type Config struct {
	*AppConfig `mapstructure:"app"`
	*LogConfig `mapstructure:"log"`
	*MoogSoft  `mapstructure:"moogsoft"`
	*Transform `mapstructure:"transform"`
}

// AppConfig 项目配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Mode    string
	Version string `mapstructure:"version"`
	Port    int    `mapstructure:"port"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// MoogSoft 转发metrics到MoogSoft ingestion API的相关配置
type MoogSoft struct {
	APIEndpoint       string `mapstructure:"api_endpoint"`
	APIToken          string `mapstructure:"api_token"`
	ContentType       string `mapstructure:"content_type"`
	Timeout           int    `mapstructure:"timeout"`
	ForwardingEnabled bool   `mapstructure:"forwarding_enabled"`
	WorkerNum         int    `mapstructure:"worker_num"`
}

// Transform metric转换配置
type Transform struct {
	TagKeys string `mapstructure:"tag_keys"`
	*Cache  `mapstructure:"cache"`
}

// Cache source缓存配置
type Cache struct {
	DefaultExpire   time.Duration `mapstructure:"default_expire"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// DefaultTagKeys TAG_KEYS默认值
const DefaultTagKeys = "name, namespace, displayName, resourceDisplayName, unit"

// KeyList 解析tag_keys为有序的key列表，空项丢弃
func (t *Transform) KeyList() []string {
	keys := strings.Split(t.TagKeys, ",")
	result := make([]string, 0, len(keys))
	for i := range keys {
		key := strings.TrimSpace(keys[i])
		if key == "" {
			continue
		}
		result = append(result, key)
	}
	return result
}

// ConfigError 必填配置缺失
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s is required", e.Key)
}

// Validate 校验必填配置
// 转发关闭时endpoint/token允许为空（只转换不发送）
func (c *Config) Validate() error {
	if c.MoogSoft == nil {
		return &ConfigError{Key: "moogsoft"}
	}
	if !c.MoogSoft.ForwardingEnabled {
		return nil
	}
	if c.MoogSoft.APIEndpoint == "" {
		return &ConfigError{Key: "API_ENDPOINT"}
	}
	if c.MoogSoft.APIToken == "" {
		return &ConfigError{Key: "API_TOKEN"}
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("app.name", "metric-forward")
	viper.SetDefault("app.version", "v1.0.0")
	viper.SetDefault("app.port", 8081)
	viper.SetDefault("log.level", "INFO")
	viper.SetDefault("log.filename", "./metric-forward.log")
	viper.SetDefault("log.max_size", 100)
	viper.SetDefault("log.max_age", 7)
	viper.SetDefault("log.max_backups", 3)
	viper.SetDefault("moogsoft.content_type", "application/json")
	viper.SetDefault("moogsoft.timeout", 5)
	viper.SetDefault("moogsoft.forwarding_enabled", true)
	viper.SetDefault("moogsoft.worker_num", 10)
	viper.SetDefault("transform.tag_keys", DefaultTagKeys)
	viper.SetDefault("transform.cache.default_expire", 600)
	viper.SetDefault("transform.cache.cleanup_interval", 1800)
}

// bindEnvs 环境变量覆盖配置文件
func bindEnvs() {
	_ = viper.BindEnv("moogsoft.api_endpoint", "API_ENDPOINT")
	_ = viper.BindEnv("moogsoft.api_token", "API_TOKEN")
	_ = viper.BindEnv("moogsoft.forwarding_enabled", "FORWARDING_ENABLED")
	_ = viper.BindEnv("transform.tag_keys", "TAG_KEYS")
	_ = viper.BindEnv("log.level", "LOGGING_LEVEL")
}

// Init 初始化配置
func Init() (err error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}
	viper.SetConfigName(env)
	viper.SetConfigType("yml")
	viper.AddConfigPath("./conf/")

	setDefaults()
	bindEnvs()

	if err = viper.ReadInConfig(); err != nil {
		fmt.Println("viper.ReadInConfig() ")
	}

	// 反序列化配置到全局变量Conf中
	if err := viper.Unmarshal(Conf); err != nil {
		fmt.Printf("viper.Unmarshal failed, err: %v\n", err)
		return err
	}

	Conf.Mode = env

	if err := Conf.Validate(); err != nil {
		return err
	}

	viper.WatchConfig()
	viper.OnConfigChange(func(in fsnotify.Event) {
		fmt.Println("config has already update...")
		// 反序列化配置更新到全局变量Conf中
		if err := viper.Unmarshal(Conf); err != nil {
			fmt.Printf("viper.Unmarshal failed, err: %v\n", err)
		}
	})

	return nil
}
