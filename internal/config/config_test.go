package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CONFIG_FILE", filepath.Join(dir, "missing.toml"))
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	for _, key := range []string{"APP_PORT", "DB_DRIVER", "SQLITE_PATH", "REDIS_ENABLED", "CORS_ALLOW_ORIGINS", "DB_ECHO", "MYSQL_DB"} {
		if _, ok := os.LookupEnv(key); ok {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.HTTPAddr() != "0.0.0.0:8080" {
		t.Fatalf("unexpected addr %s", cfg.HTTPAddr())
	}
	if cfg.Database.Driver != DriverSQLite || cfg.Database.SQLitePath != "keyboards.db" {
		t.Fatalf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.App.GreetingEnv != "NAME" {
		t.Fatalf("unexpected greeting env %q", cfg.App.GreetingEnv)
	}
	if cfg.Redis.Enabled || cfg.RabbitMQ.Enabled {
		t.Fatalf("optional infrastructure must be off by default")
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := isolate(t)

	configPath := filepath.Join(dir, "config.toml")
	content := `
[app]
port = 9090

[database]
driver = "mysql"

[database.mysql]
db = "from_file"

[redis]
enabled = true
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	t.Setenv("CONFIG_FILE", configPath)
	t.Setenv("MYSQL_DB", "from_env")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.App.Port != 9090 {
		t.Fatalf("expected port from file, got %d", cfg.App.Port)
	}
	if cfg.Database.Driver != DriverMySQL || !cfg.Redis.Enabled {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Database.MySQL.DB != "from_env" {
		t.Fatalf("env should override file, got %q", cfg.Database.MySQL.DB)
	}
	if cfg.Database.MySQL.Host != "127.0.0.1" {
		t.Fatalf("defaults should survive a partial file, got %q", cfg.Database.MySQL.Host)
	}
	if len(cfg.CORS.AllowOrigins) != 2 || cfg.CORS.AllowOrigins[1] != "http://b.example" {
		t.Fatalf("unexpected origins %v", cfg.CORS.AllowOrigins)
	}
}

func TestLoadDotEnvDoesNotOverrideProcessEnv(t *testing.T) {
	dir := isolate(t)

	envPath := filepath.Join(dir, "test.env")
	if err := os.WriteFile(envPath, []byte("SQLITE_PATH=from-dotenv.db\nAPP_PORT=7000\n"), 0o600); err != nil {
		t.Fatalf("write env file failed: %v", err)
	}
	t.Setenv("ENV_FILE", envPath)
	t.Setenv("APP_PORT", "7100")
	t.Cleanup(func() { os.Unsetenv("SQLITE_PATH") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Database.SQLitePath != "from-dotenv.db" {
		t.Fatalf("expected sqlite path from .env, got %q", cfg.Database.SQLitePath)
	}
	if cfg.App.Port != 7100 {
		t.Fatalf("process env must win over .env, got %d", cfg.App.Port)
	}
}

func TestSQLiteDSN(t *testing.T) {
	if got := SQLiteDSN("keyboards.db"); got != "keyboards.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)" {
		t.Fatalf("unexpected dsn %s", got)
	}
	if got := SQLiteDSN("file.db?mode=rwc"); got != "file.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)" {
		t.Fatalf("unexpected dsn %s", got)
	}
}
