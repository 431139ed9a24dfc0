/*
Package config manages TOML config for the bangserve daemon.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/lmarchetti/bangserve/internal/utils"
)

// Config holds the entire config structure.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Bangs      BangsConfig      `toml:"bangs"`
	Corpus     CorpusConfig     `toml:"corpus"`
	Predict    PredictConfig    `toml:"predict"`
	External   ExternalConfig   `toml:"external"`
	OpenSearch OpenSearchConfig `toml:"opensearch"`
}

// ServerConfig has HTTP server related options.
type ServerConfig struct {
	ListenAddr     string `toml:"listen_addr"`
	ReadTimeoutMS  int    `toml:"read_timeout_ms"`
	WriteTimeoutMS int    `toml:"write_timeout_ms"`
}

// BangsConfig has bang resolution options.
type BangsConfig struct {
	DefaultTrigger string `toml:"default_trigger"`
}

// CorpusConfig holds prediction corpus options.
type CorpusConfig struct {
	ExtraWords []string `toml:"extra_words"`
}

// PredictConfig holds prediction engine tuning options.
type PredictConfig struct {
	Limit            int `toml:"limit"`
	NgramMinQueryLen int `toml:"ngram_min_query_len"`
	FuzzyMinQueryLen int `toml:"fuzzy_min_query_len"`
}

// ExternalConfig holds the external suggestions client options.
type ExternalConfig struct {
	BaseURL         string `toml:"base_url"`
	TimeoutMS       int    `toml:"timeout_ms"`
	CacheTTLS       int    `toml:"cache_ttl_s"`
	CacheMaxEntries int    `toml:"cache_max_entries"`
}

// OpenSearchConfig holds the OpenSearch descriptor options.
type OpenSearchConfig struct {
	ShortName   string `toml:"short_name"`
	Description string `toml:"description"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:     ":8080",
			ReadTimeoutMS:  5000,
			WriteTimeoutMS: 5000,
		},
		Bangs: BangsConfig{
			DefaultTrigger: "g",
		},
		Corpus: CorpusConfig{
			ExtraWords: nil,
		},
		Predict: PredictConfig{
			Limit:            8,
			NgramMinQueryLen: 2,
			FuzzyMinQueryLen: 3,
		},
		External: ExternalConfig{
			BaseURL:         "https://suggestqueries.google.com/complete/search",
			TimeoutMS:       3000,
			CacheTTLS:       60,
			CacheMaxEntries: 500,
		},
		OpenSearch: OpenSearchConfig{
			ShortName:   "bangserve",
			Description: "Bang-aware search shortcuts and suggestions",
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/bangserve
// 2. ~/Library/Application Support/bangserve (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "bangserve")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "bangserve")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/bangserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var cfg *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			cfg, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return cfg, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	cfg, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		return tryPartialParse(configPath)
	}
	return cfg, nil
}

// tryPartialParse attempts to parse a TOML file, recovering whichever
// sections decode cleanly and leaving the rest at their defaults.
func tryPartialParse(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return cfg, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &cfg.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "bangs"); ok {
		extractBangsConfig(section, &cfg.Bangs)
	}
	if section, ok := utils.ExtractSection(tempConfig, "corpus"); ok {
		if words, ok := section["extra_words"].([]any); ok {
			for _, w := range words {
				if s, ok := w.(string); ok {
					cfg.Corpus.ExtraWords = append(cfg.Corpus.ExtraWords, s)
				}
			}
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "predict"); ok {
		extractPredictConfig(section, &cfg.Predict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "external"); ok {
		extractExternalConfig(section, &cfg.External)
	}
	if section, ok := utils.ExtractSection(tempConfig, "opensearch"); ok {
		extractOpenSearchConfig(section, &cfg.OpenSearch)
	}
	return cfg, nil
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := data["listen_addr"].(string); ok {
		server.ListenAddr = val
	}
	if val, ok := utils.ExtractInt64(data, "read_timeout_ms"); ok {
		server.ReadTimeoutMS = val
	}
	if val, ok := utils.ExtractInt64(data, "write_timeout_ms"); ok {
		server.WriteTimeoutMS = val
	}
}

func extractBangsConfig(data map[string]any, bangsCfg *BangsConfig) {
	if val, ok := data["default_trigger"].(string); ok {
		bangsCfg.DefaultTrigger = val
	}
}

func extractPredictConfig(data map[string]any, predict *PredictConfig) {
	if val, ok := utils.ExtractInt64(data, "limit"); ok {
		predict.Limit = val
	}
	if val, ok := utils.ExtractInt64(data, "ngram_min_query_len"); ok {
		predict.NgramMinQueryLen = val
	}
	if val, ok := utils.ExtractInt64(data, "fuzzy_min_query_len"); ok {
		predict.FuzzyMinQueryLen = val
	}
}

func extractExternalConfig(data map[string]any, ext *ExternalConfig) {
	if val, ok := data["base_url"].(string); ok {
		ext.BaseURL = val
	}
	if val, ok := utils.ExtractInt64(data, "timeout_ms"); ok {
		ext.TimeoutMS = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_ttl_s"); ok {
		ext.CacheTTLS = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_max_entries"); ok {
		ext.CacheMaxEntries = val
	}
}

func extractOpenSearchConfig(data map[string]any, osCfg *OpenSearchConfig) {
	if val, ok := data["short_name"].(string); ok {
		osCfg.ShortName = val
	}
	if val, ok := data["description"].(string); ok {
		osCfg.Description = val
	}
}

// RebuildConfigFile force creates a new config.toml at default.
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(defaultPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return err
	}
	cfg := DefaultConfig()
	return utils.SaveTOMLFile(cfg, defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file.
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}
