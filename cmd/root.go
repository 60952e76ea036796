package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wsnauth/ltrq/cmd/create"
	"github.com/wsnauth/ltrq/cmd/inspect"
	"github.com/wsnauth/ltrq/cmd/validate"
	"github.com/wsnauth/ltrq/internal/pkg/logger"
	"github.com/wsnauth/ltrq/internal/pkg/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "ltrq",
	Short:   "ltrq works with login ticket request documents",
	Long:    fmt.Sprintf("ltrq %s - Create, validate and inspect login ticket request documents", version.GetVersion()),
	Version: version.GetFullVersion(),
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func addSubCommands() {
	rootCmd.AddCommand(validate.ValidateCmd)
	rootCmd.AddCommand(create.CreateCmd)
	rootCmd.AddCommand(inspect.InspectCmd)
}

func init() {
	cobra.OnInitialize(initConfig)

	logger.Initialize()

	addSubCommands()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ltrq/config.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home + "/.config/ltrq")
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
		if err := viper.ReadInConfig(); err != nil {
			viper.SetConfigName(".ltrq")
		}
	}

	viper.SetEnvPrefix("ltrq")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
