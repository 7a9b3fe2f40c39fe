package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsAppliesEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	body := `{"amount":5,"index":0,"conn_limit":1000,"game_version":"X32.1.0","thread_delay_ms":100,"factory_delay_ms":50,"factory_stack_size_kb":512,"client_thread_stack_size_kb":512,"save_delay_secs":60}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("AMOUNT", "42")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Amount != 42 {
		t.Fatalf("Amount = %d, want 42 (env override)", s.Amount)
	}
	if s.ConnLimit != 1000 {
		t.Fatalf("ConnLimit = %d, want 1000", s.ConnLimit)
	}
}

func TestLoadSettingsMissingFileErrors(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing settings file")
	}
}

func TestLoadAccountsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accounts.json")
	body := `[{"email":"a@example.com","password":"pw","server_ip":"1.2.3.4","char_id":1,"use_socks":true,"socks_proxy":"127.0.0.1:1080"}]`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	accounts, err := LoadAccounts(path)
	if err != nil {
		t.Fatalf("LoadAccounts: %v", err)
	}
	if len(accounts) != 1 || accounts[0].Email != "a@example.com" {
		t.Fatalf("unexpected accounts: %+v", accounts)
	}
	if !accounts[0].UseSocks || accounts[0].SocksProxy != "127.0.0.1:1080" {
		t.Fatalf("socks fields not decoded: %+v", accounts[0])
	}
}
