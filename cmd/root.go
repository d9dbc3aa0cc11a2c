package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mqttblast/internal/banner"
	"mqttblast/internal/bench"
	"mqttblast/internal/cli"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mqttblast",
	Short: "mqttblast - MQTT Publish Load Generator",
	Long: `
mqttblast floods an MQTT broker with synthetic publish traffic to measure
sustainable throughput and per-message latency under configurable concurrency.

It establishes a pool of concurrent client sessions, publishes timestamped
payloads in backpressure-limited batches, and reports per-second throughput
plus a final latency summary.`,
	Run: func(cmd *cobra.Command, args []string) {
		cli.Start(buildConfig())
	},
}

func Execute() {
	// Custom Help with Banner
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Println(banner.GetString())
		cmd.Usage()
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := bench.DefaultConfig()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mqttblast.yaml)")

	rootCmd.Flags().StringP("host", "H", defaults.BrokerHost, "Broker host")
	rootCmd.Flags().IntP("port", "p", defaults.BrokerPort, "Broker port")
	rootCmd.Flags().IntP("clients", "c", defaults.NumberOfClients, "Number of concurrent client sessions")
	rootCmd.Flags().IntP("messages", "m", defaults.NumberOfMessages, "Publish iterations per session")
	rootCmd.Flags().Int("delay", int(defaults.MessageDelay/time.Millisecond), "Pacing delay after each drained batch (ms)")
	rootCmd.Flags().StringP("topic", "t", defaults.Topic, "Publish topic")
	rootCmd.Flags().IntP("qos", "q", int(defaults.QoS), "QoS level (0-2)")
	rootCmd.Flags().Bool("clean-session", defaults.CleanSession, "Start sessions with a clean state")
	rootCmd.Flags().StringP("username", "u", "", "Broker username")
	rootCmd.Flags().StringP("password", "P", "", "Broker password")
	rootCmd.Flags().String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	rootCmd.Flags().String("log-format", defaults.LogFormat, "Log format (text|json)")

	// Explicit flags override file/env values, which override flag defaults.
	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".mqttblast")
		}
	}
	viper.AutomaticEnv()
	viper.ReadInConfig()
}

func buildConfig() bench.Config {
	cfg := bench.DefaultConfig()
	cfg.BrokerHost = viper.GetString("host")
	cfg.BrokerPort = viper.GetInt("port")
	cfg.NumberOfClients = viper.GetInt("clients")
	cfg.NumberOfMessages = viper.GetInt("messages")
	cfg.MessageDelay = time.Duration(viper.GetInt("delay")) * time.Millisecond
	cfg.Topic = viper.GetString("topic")
	cfg.QoS = byte(viper.GetInt("qos"))
	cfg.CleanSession = viper.GetBool("clean-session")
	cfg.Username = viper.GetString("username")
	cfg.Password = viper.GetString("password")
	cfg.LogLevel = viper.GetString("log-level")
	cfg.LogFormat = viper.GetString("log-format")
	return cfg
}
