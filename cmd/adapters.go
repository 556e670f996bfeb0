package cmd

import (
	"context"
	"fmt"
	"os"

	"webhook-relay/core/config"
	"webhook-relay/core/logger"
	"webhook-relay/core/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// adaptersCmd represents the adapters command
var adaptersCmd = &cobra.Command{
	Use:   "adapters",
	Short: "List the registered webhook adapters",
	Long:  `Reads the record store directly and prints every registered adapter without starting the server.`,
	Run: func(cmd *cobra.Command, args []string) {
		runAdaptersList(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(adaptersCmd)
}

func runAdaptersList(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	recordStore := store.New(cfg.Store, logg)
	records, err := recordStore.Load(ctx)
	if err != nil {
		logg.Fatal("Failed to load record store", zap.Error(err))
	}

	if len(records) == 0 {
		fmt.Println("No adapters registered.")
		return
	}

	// Pretty Console Output
	fmt.Printf("\n--- Registered Adapters (%d) ---\n", len(records))
	for _, r := range records {
		state := "enabled"
		if !r.Enabled {
			state = "disabled"
		}
		fmt.Printf("ID:          %s\n", r.ID)
		fmt.Printf("Name:        %s\n", r.Name)
		fmt.Printf("URL:         %s\n", r.URL)
		fmt.Printf("State:       %s\n", state)
		fmt.Printf("Targets:     %d\n", len(r.Targets))
		for _, target := range r.Targets {
			fmt.Printf("  -> %s\n", target)
		}
		fmt.Printf("Updated At:  %s\n", r.UpdatedAt.Format("2006-01-02 15:04:05 MST"))
		fmt.Println("-------------------------------")
	}
}
