package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	flagStateDir string
	log          zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cxsum",
	Short: "Sponge digests and resumable hashing sessions",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagStateDir, "state-dir", "d", defaultStateDir(),
		"directory holding persisted hashing sessions")

	log = zerolog.New(zerolog.NewConsoleWriter())

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetEnvPrefix("cxsum")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// flags win over the environment
	if !rootCmd.PersistentFlags().Changed("state-dir") && viper.IsSet("state-dir") {
		flagStateDir = viper.GetString("state-dir")
	}
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cxsum"
	}
	return filepath.Join(home, ".cxsum")
}
