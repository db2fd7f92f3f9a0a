package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging      LoggingConfig      `yaml:"logging"`
	OpenAIModel  string             `yaml:"openai_model"`
	XAIModel     string             `yaml:"xai_model"`
	LLMTimeout   int                `yaml:"llm_timeout_seconds"`
	ProduceQuota ProduceQuotaConfig `yaml:"produce_quota"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ProduceQuotaConfig 는 팩 생성 파이프라인 실행에 대한 속도/일일 한도를 정의한다.
// 한 번의 실행이 LLM 호출 3회를 의미하므로, 한도는 파이프라인 실행 단위로 센다.
type ProduceQuotaConfig struct {
	// RequestsPerMinute 는 분당 최대 파이프라인 실행 수이다.
	// 0 이하면 제한 없음으로 간주한다.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestsPerDay 는 일일 최대 파이프라인 실행 수이다.
	// 0 이하면 제한 없음으로 간주한다.
	RequestsPerDay int `yaml:"requests_per_day"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	config = &c
}

func applyDefaults(c *AppConfig) {
	if c.OpenAIModel == "" {
		c.OpenAIModel = "gpt-4.1-mini"
	}
	if c.XAIModel == "" {
		c.XAIModel = "grok-4-fast-non-reasoning"
	}
	if c.LLMTimeout <= 0 {
		c.LLMTimeout = 120
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
