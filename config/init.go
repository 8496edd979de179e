package config

import (
	"log"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init 加载配置：先读取 config.yaml，再用环境变量覆盖
func Init() {
	once.Do(func() {
		cfg := &Config{
			Host:   "0.0.0.0",
			Port:   "8080",
			Prefix: "api",
			Mode:   ModeDebug,
		}

		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")

		if err := viper.ReadInConfig(); err != nil {
			// 没有配置文件时仅依赖环境变量
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				log.Fatalf("读取配置文件失败: %v", err)
			}
		} else if err := viper.Unmarshal(cfg); err != nil {
			log.Fatalf("解析配置文件失败: %v", err)
		}

		if err := envconfig.Process("cfs", cfg); err != nil {
			log.Fatalf("读取环境变量失败: %v", err)
		}

		instance = cfg
	})
}

// Get 获取全局配置，要求先调用 Init
func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}
