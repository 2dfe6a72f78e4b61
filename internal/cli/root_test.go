package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/veridex/veridex/internal/model"
)

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-abc")
	t.Setenv("OPENAI_API_KEY", "sk-def")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-ghi")

	tests := []struct {
		provider string
		want     string
	}{
		{"groq", "gsk-abc"},
		{"openai", "sk-def"},
		{"anthropic", "sk-ant-ghi"},
		{"claude", "sk-ant-ghi"},
		{"ollama", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := resolveAPIKey(tt.provider); got != tt.want {
			t.Errorf("resolveAPIKey(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("VERIDEX_PROVIDER", "ollama")
	t.Setenv("VERIDEX_MODEL", "llama3.1:8b")
	t.Setenv("VERIDEX_ADDR", ":9090")
	initViper()

	config := model.DefaultConfig()
	applyEnvOverrides(config)

	if config.LLM.Provider != "ollama" {
		t.Errorf("Provider = %q, want ollama", config.LLM.Provider)
	}
	if config.LLM.Model != "llama3.1:8b" {
		t.Errorf("Model = %q", config.LLM.Model)
	}
	if config.Server.Addr != ":9090" {
		t.Errorf("Addr = %q", config.Server.Addr)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `llm:
  provider: openai
  model: gpt-4o-mini
acquire:
  min_runes: 100
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("OPENAI_API_KEY", "sk-test")
	initViper()

	oldCfgFile := cfgFile
	cfgFile = path
	defer func() { cfgFile = oldCfgFile }()

	config, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if config.LLM.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", config.LLM.Provider)
	}
	if config.LLM.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, key must come from the environment", config.LLM.APIKey)
	}
	if config.Acquire.MinRunes != 100 {
		t.Errorf("MinRunes = %d, want 100", config.Acquire.MinRunes)
	}
	// Fields absent from the file keep their defaults
	if config.Acquire.MaxRunes != 6000 {
		t.Errorf("MaxRunes = %d, want default 6000", config.Acquire.MaxRunes)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	oldCfgFile := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "nope.yaml")
	defer func() { cfgFile = oldCfgFile }()

	if _, err := loadConfig(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestTruncateInput(t *testing.T) {
	short := "a short input"
	if got := truncateInput(short); got != short {
		t.Errorf("truncateInput(%q) = %q", short, got)
	}

	long := ""
	for i := 0; i < 20; i++ {
		long += "abcdefgh"
	}
	got := truncateInput(long)
	if len([]rune(got)) != 60 {
		t.Errorf("truncated length = %d, want 60", len([]rune(got)))
	}
}
