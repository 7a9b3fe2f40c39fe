// Package config loads the two on-disk JSON files that describe a fleet
// run: process-wide settings and the account roster. Every field may be
// overridden by an environment variable of the same name upper-cased,
// following the getEnvInt/getEnvString pattern used elsewhere in this
// codebase. Missing or malformed config is fatal to the process.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Settings is the process-wide configuration loaded from settings.json.
type Settings struct {
	Amount                  int    `json:"amount"`
	Index                   int    `json:"index"`
	ConnLimit               int    `json:"conn_limit"`
	GameVersion             string `json:"game_version"`
	ThreadDelayMs           int    `json:"thread_delay_ms"`
	FactoryDelayMs          int    `json:"factory_delay_ms"`
	FactoryStackSizeKB      int    `json:"factory_stack_size_kb"`
	ClientThreadStackSizeKB int    `json:"client_thread_stack_size_kb"`
	SaveDelaySecs           int    `json:"save_delay_secs"`
	MetricsPort             int    `json:"metrics_port"`
}

// Account describes one fleet member's login and connection policy, as
// loaded from accounts.json.
type Account struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	ServerIP     string `json:"server_ip"`
	FetchNewData bool   `json:"fetch_new_data"`
	CharID       int32  `json:"char_id"`
	Module       string `json:"module"`
	UseSocks     bool   `json:"use_socks"`
	SocksProxy   string `json:"socks_proxy"`
	UseHTTP      bool   `json:"use_http"`
	HTTPProxy    string `json:"http_proxy"`
}

// LoadSettings reads and decodes settingsPath, applying environment
// overrides for every numeric and string field. A missing or unparsable
// file is fatal — the process cannot meaningfully run without it.
func LoadSettings(settingsPath string) (*Settings, error) {
	raw, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("config: read settings %s: %w", settingsPath, err)
	}
	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("config: parse settings %s: %w", settingsPath, err)
	}

	s.Amount = getEnvInt("AMOUNT", s.Amount)
	s.Index = getEnvInt("INDEX", s.Index)
	s.ConnLimit = getEnvInt("CONN_LIMIT", s.ConnLimit)
	s.GameVersion = getEnvString("GAME_VERSION", s.GameVersion)
	s.ThreadDelayMs = getEnvInt("THREAD_DELAY_MS", s.ThreadDelayMs)
	s.FactoryDelayMs = getEnvInt("FACTORY_DELAY_MS", s.FactoryDelayMs)
	s.FactoryStackSizeKB = getEnvInt("FACTORY_STACK_SIZE_KB", s.FactoryStackSizeKB)
	s.ClientThreadStackSizeKB = getEnvInt("CLIENT_THREAD_STACK_SIZE_KB", s.ClientThreadStackSizeKB)
	s.SaveDelaySecs = getEnvInt("SAVE_DELAY_SECS", s.SaveDelaySecs)
	s.MetricsPort = getEnvInt("METRICS_PORT", s.MetricsPort)

	return &s, nil
}

// LoadAccounts reads and decodes the account roster at accountsPath.
func LoadAccounts(accountsPath string) ([]Account, error) {
	raw, err := os.ReadFile(accountsPath)
	if err != nil {
		return nil, fmt.Errorf("config: read accounts %s: %w", accountsPath, err)
	}
	var accounts []Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("config: parse accounts %s: %w", accountsPath, err)
	}
	return accounts, nil
}

func getEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}
