package main

import (
	"fmt"
	"os"

	"github.com/de-tools/parking-atlas/pkg/config"
	"github.com/de-tools/parking-atlas/pkg/runtime/bootstrap"
	"github.com/de-tools/parking-atlas/pkg/server"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const configPathEnv = "PARKING_ATLAS_CONFIG"

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Parking Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the YAML config file (default is $PARKING_ATLAS_CONFIG, then ./parking-atlas.yaml if present)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	envErr := godotenv.Load()

	cfg, err := config.Load(resolveConfigPath(cfgPath))
	if err != nil {
		return err
	}

	logger, err := bootstrap.NewLogger(os.Stdout, cfg.Log.Level)
	if err != nil {
		return err
	}
	if envErr != nil {
		logger.Debug().Err(envErr).Msg("no .env file loaded")
	}
	ctx := logger.WithContext(cmd.Context())

	components, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize parking catalog: %w", err)
	}

	api := server.NewWebAPI(server.Config{
		Addr: cfg.Server.Addr(),
		Dependencies: server.Dependencies{
			Reporter: components.Service,
			Money:    components.Money,
			Logger:   logger,
		},
	})

	return api.Start()
}

// resolveConfigPath prefers the flag, then PARKING_ATLAS_CONFIG. Call it after
// godotenv.Load so a .env file can supply the path.
func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(configPathEnv)
}
