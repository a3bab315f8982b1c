package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/chrisdamba/foodinsights/internal/analytics"
	"github.com/chrisdamba/foodinsights/internal/factories"
	"github.com/chrisdamba/foodinsights/internal/ingest"
	"github.com/chrisdamba/foodinsights/internal/models"
	"github.com/chrisdamba/foodinsights/internal/output"
	"github.com/chrisdamba/foodinsights/internal/repositories"
	"github.com/chrisdamba/foodinsights/internal/repositories/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "foodinsights",
	Short: "Analyzes food delivery order histories",
	Long:  `foodinsights is a CLI tool that turns a food delivery order history into a full analytics report: spending, restaurant loyalty, food preferences, timing patterns, forecasts and narrative insights.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := run(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func run(cfg *models.Config) error {
	orders, err := loadOrders(cfg)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d orders", len(orders))

	report, err := analytics.Analyze(orders)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	log.Printf("Analyzed %d valid orders across %d restaurants",
		report.TotalOrders, report.Restaurants.UniqueRestaurants)

	destination, err := output.Determine(cfg)
	if err != nil {
		return fmt.Errorf("failed to create output destination: %w", err)
	}
	defer destination.Close()

	if err := output.NewPublisher(destination).Publish(report, orders); err != nil {
		return fmt.Errorf("failed to publish report: %w", err)
	}

	if cfg.PostgresEnabled {
		if err := persist(cfg, report, orders); err != nil {
			return err
		}
	}
	return nil
}

func loadOrders(cfg *models.Config) ([]models.Order, error) {
	if cfg.SampleMode {
		factory := factories.NewOrderFactory(cfg.SampleSeed)
		return factory.CreateOrders(cfg), nil
	}
	if cfg.InputFile == "" {
		return nil, fmt.Errorf("no input file configured; set input_file or enable sample_mode")
	}
	return ingest.NewLoader(cfg.InputFile, cfg.InputFormat).Load()
}

func persist(cfg *models.Config, report *models.FullAnalytics, orders []models.Order) error {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()

	var orderRepo repositories.OrderRepository = postgres.NewOrderRepository(pool)
	if err := orderRepo.BulkCreate(ctx, orders); err != nil {
		return fmt.Errorf("failed to store orders: %w", err)
	}

	var snapshotRepo repositories.SnapshotRepository = postgres.NewSnapshotRepository(pool)
	id, err := snapshotRepo.SaveSnapshot(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	log.Printf("Saved analytics snapshot %s", id)
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().String("input-file", "", "Order history export to analyze")
	rootCmd.Flags().String("input-format", "json", "Input format (json or csv)")
	rootCmd.Flags().Bool("sample-mode", false, "Generate a synthetic history instead of reading a file")
	rootCmd.Flags().Int("sample-order-count", 100, "Number of synthetic orders to generate")
	rootCmd.Flags().Int64("sample-seed", 42, "Random seed for synthetic history")
	rootCmd.Flags().Bool("kafka-enabled", false, "Publish reports to Kafka")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("output-format", "console", "Output format (console, json, csv, parquet)")
	rootCmd.Flags().String("output-path", "", "Output directory for file formats")
	rootCmd.Flags().Bool("postgres-enabled", false, "Store orders and the report snapshot in Postgres")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
