package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/veridex/veridex/internal/model"
)

const version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "veridex",
	Short: "Fake-news detection for articles and claims",
	Long: `Veridex classifies news articles and claims as True, Fake, or
Unverifiable using a single LLM call. Input is either pasted text or a URL;
URLs are fetched and reduced to readable article text first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.veridex/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output on stderr")

	rootCmd.AddCommand(versionCmd)
}

func initViper() {
	viper.SetEnvPrefix("VERIDEX")
	viper.AutomaticEnv()
}

// defaultConfigPath returns ~/.veridex/config.yaml
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".veridex", "config.yaml")
}

// loadConfig builds the runtime configuration: defaults, then the config
// file, then environment overrides. API keys come only from the environment.
func loadConfig() (*model.Config, error) {
	config := model.DefaultConfig()

	path := cfgFile
	if path == "" {
		path = defaultConfigPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
			logVerbose("loaded config from %s\n", path)
		case os.IsNotExist(err) && cfgFile == "":
			// No config file is fine; defaults apply
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	config.Output.Verbose = config.Output.Verbose || verbose
	config.LLM.APIKey = resolveAPIKey(config.LLM.Provider)

	return config, nil
}

// applyEnvOverrides applies VERIDEX_* environment variables on top of the
// file configuration
func applyEnvOverrides(config *model.Config) {
	if v := viper.GetString("provider"); v != "" {
		config.LLM.Provider = v
	}
	if v := viper.GetString("model"); v != "" {
		config.LLM.Model = v
	}
	if v := viper.GetString("base_url"); v != "" {
		config.LLM.BaseURL = v
	}
	if v := viper.GetString("addr"); v != "" {
		config.Server.Addr = v
	}
	if v := viper.GetString("cache_dir"); v != "" {
		config.Cache.Dir = v
	}
}

// resolveAPIKey reads the provider's conventional environment variable
func resolveAPIKey(provider string) string {
	switch provider {
	case "groq":
		return os.Getenv("GROQ_API_KEY")
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "anthropic", "claude":
		return os.Getenv("ANTHROPIC_API_KEY")
	default:
		// Ollama and friends need no key
		return ""
	}
}

func logVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("veridex v%s\n", version)
	},
}
