package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/cartofolio/internal/model"
)

const version = "cartofolio v0.1.0"

var (
	cfgFile    string
	verbose    bool
	language   string
	source     string
	noCache    bool
	jsonOutput bool

	configErr error
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cartofolio",
	Short: "Cartofolio - browse and filter a map portfolio of field missions",
	Long: `Cartofolio loads the per-language mission documents of a map portfolio,
derives the filter vocabularies (skills, hardware categories, software),
filters missions by status and tags, and projects them into map markers
and detail panels.

Documents are read from an http(s) URL, a file:// URL or a local
directory holding a static-site checkout.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command; cancelling ctx aborts document loads
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number of Cartofolio.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.cartofolio/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.StringVarP(&language, "lang", "l", "", "document language (fr, en, es; default from config)")
	flags.StringVar(&source, "source", "", "base URL or directory of the mission documents")
	flags.BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	flags.BoolVar(&jsonOutput, "json", false, "print JSON instead of text")

	rootCmd.AddCommand(versionCmd)
}

// initConfig layers defaults, the config file, CARTOFOLIO_* environment
// variables and flags into viper.
func initConfig() {
	viper.Reset()
	configErr = nil

	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("output.verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("output.json", flags.Lookup("json"))
	_ = viper.BindPFlag("source.default_language", flags.Lookup("lang"))
	_ = viper.BindPFlag("source.base_url", flags.Lookup("source"))

	viper.SetConfigType("yaml")
	defaults, err := yaml.Marshal(model.DefaultConfig())
	if err == nil {
		err = viper.MergeConfig(bytes.NewReader(defaults))
	}
	if err != nil {
		configErr = fmt.Errorf("load default configuration: %w", err)
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
		} else {
			viper.AddConfigPath(filepath.Join(home, ".cartofolio"))
			viper.SetConfigName("config")
		}
	}

	// Read in environment variables that match CARTOFOLIO_*
	viper.SetEnvPrefix("CARTOFOLIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("read config: %w", err)
		}
		return
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
