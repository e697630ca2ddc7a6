package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// DefaultConfigFile is read by Load when present.
const DefaultConfigFile = "config.yaml"

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// EngineConfig represents computation engine configuration
type EngineConfig struct {
	ExecutionMode     string `yaml:"execution_mode"`     // auto, serial, parallel
	Workers           int    `yaml:"workers"`            // Max goroutines in parallel mode (0 = GOMAXPROCS)
	ParallelThreshold int    `yaml:"parallel_threshold"` // Auto mode goes parallel at this many items
}

// PricingConfig represents option pricer settings
type PricingConfig struct {
	Scale      float64 `yaml:"scale"`     // Divisor applied to spot and strike
	Tolerance  float64 `yaml:"tolerance"` // Accepted deviation from reference prices
	InputFile  string  `yaml:"input_file"`
	OutputFile string  `yaml:"output_file"`
	Validate   bool    `yaml:"validate"` // Print the reference check after pricing
}

// SobelConfig represents edge detector settings
type SobelConfig struct {
	Variant string `yaml:"variant"` // exact, sw1, sw2, sw3, sw4
}

type Config struct {
	// Server settings
	Port string `yaml:"port"`

	Logging LoggingConfig `yaml:"logging"`
	Engine  EngineConfig  `yaml:"engine"`
	Pricing PricingConfig `yaml:"pricing"`
	Sobel   SobelConfig   `yaml:"sobel"`
}

// Load reads .env, then environment defaults, then config.yaml.
func Load() *Config {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom is Load with an explicit YAML path. A missing or unreadable file
// leaves the environment defaults in place.
func LoadFrom(path string) *Config {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Logging: LoggingConfig{
			LogLevel: getEnv("LOG_LEVEL", "info"),
			LogFile:  getEnv("LOG_FILE", "approxbench.log"),
		},
		Engine: EngineConfig{
			ExecutionMode:     getEnv("ENGINE_EXECUTION_MODE", "serial"),
			Workers:           getEnvInt("ENGINE_WORKERS", 0),
			ParallelThreshold: getEnvInt("ENGINE_PARALLEL_THRESHOLD", 4096),
		},
		Pricing: PricingConfig{
			Scale:      getEnvFloat("PRICING_SCALE", 120.0),
			Tolerance:  getEnvFloat("PRICING_TOLERANCE", 1e-2),
			InputFile:  getEnv("PRICING_INPUT_FILE", ""),
			OutputFile: getEnv("PRICING_OUTPUT_FILE", ""),
			Validate:   getEnvBool("PRICING_VALIDATE", false),
		},
		Sobel: SobelConfig{
			Variant: getEnv("SOBEL_VARIANT", "exact"),
		},
	}

	if yamlCfg := loadYAMLConfig(path); yamlCfg != nil {
		cfg.overlay(yamlCfg)
	}

	return cfg
}

// overlay copies every non-zero YAML value over the defaults.
func (c *Config) overlay(y *Config) {
	if y.Port != "" {
		c.Port = y.Port
	}

	if y.Logging.LogLevel != "" {
		c.Logging.LogLevel = y.Logging.LogLevel
	}
	if y.Logging.LogFile != "" {
		c.Logging.LogFile = y.Logging.LogFile
	}

	if y.Engine.ExecutionMode != "" {
		c.Engine.ExecutionMode = y.Engine.ExecutionMode
	}
	if y.Engine.Workers > 0 {
		c.Engine.Workers = y.Engine.Workers
	}
	if y.Engine.ParallelThreshold > 0 {
		c.Engine.ParallelThreshold = y.Engine.ParallelThreshold
	}

	if y.Pricing.Scale > 0 {
		c.Pricing.Scale = y.Pricing.Scale
	}
	if y.Pricing.Tolerance > 0 {
		c.Pricing.Tolerance = y.Pricing.Tolerance
	}
	if y.Pricing.InputFile != "" {
		c.Pricing.InputFile = y.Pricing.InputFile
	}
	if y.Pricing.OutputFile != "" {
		c.Pricing.OutputFile = y.Pricing.OutputFile
	}
	if y.Pricing.Validate {
		c.Pricing.Validate = true
	}

	if y.Sobel.Variant != "" {
		c.Sobel.Variant = y.Sobel.Variant
	}
}

func loadYAMLConfig(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		// Could not read config file - silently return nil
		return nil
	}

	var yamlCfg Config
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		// Could not parse config file - silently return nil
		return nil
	}

	return &yamlCfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
