package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/imageseal/imageseal/internal/config"
	"github.com/imageseal/imageseal/internal/platform/awsec2"
)

var (
	configPath string
	regionFlag string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "imageseal",
	Short:         "Inspect and manage the EC2 resources used for image sealing",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&regionFlag, "region", "", "EC2 region (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(consoleCmd)
}

func newLogger(cfg *config.Config) logr.Logger {
	if !verbose && !cfg.Verbose {
		return logr.Discard()
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(os.Stderr, prefix, args)
		} else {
			fmt.Fprintln(os.Stderr, args)
		}
	}, funcr.Options{Verbosity: 1})
}

// connect loads the configuration and binds a Service to the resolved
// region, assuming the configured role when one is set.
func connect(ctx context.Context) (*awsec2.Service, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if regionFlag != "" {
		cfg.Region = regionFlag
	}

	opts := []awsec2.Option{
		awsec2.WithLogger(newLogger(cfg)),
		awsec2.WithDefaultTags(cfg.DefaultTags),
		awsec2.WithDebug(verbose || cfg.Verbose),
	}
	if cfg.KeyPair != "" {
		opts = append(opts, awsec2.WithKeyPair(cfg.KeyPair))
	}

	var svc *awsec2.Service
	if cfg.RoleARN != "" {
		svc, err = awsec2.ConnectAs(ctx, cfg.RoleARN, cfg.Region, cfg.SessionName, opts...)
	} else {
		svc, err = awsec2.Connect(ctx, cfg.Region, opts...)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to EC2: %w", err)
	}
	return svc, cfg, nil
}
