// Package cmd is for command line interactions with the mrna application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

var settingsPath string

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "mrna",
	Short: `Design mRNA production vectors and score IVT RNA batches.
Assemble plasmid constructs from stock elements and a codon-optimized
payload, and run lab measurements through quality control thresholds`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initSettings, initLogger)

	RootCmd.PersistentFlags().StringVarP(&settingsPath, "settings", "s", "", "path to a settings file (YAML)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log per-step detail")
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}

// initSettings reads the optional settings file into viper. A missing
// default settings.yaml is fine; the built-in thresholds apply.
func initSettings() {
	if settingsPath != "" {
		viper.SetConfigFile(settingsPath)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings from %s: %v", settingsPath, err)
		}
		return
	}

	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() //nolint:errcheck // optional file
}

func initLogger() {
	conf := zap.NewProductionConfig()
	if viper.GetBool("verbose") {
		conf = zap.NewDevelopmentConfig()
		conf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	zl, err := conf.Build()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	logger = zl.Sugar()
}
