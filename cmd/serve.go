package cmd

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/diagen/pkg/provider"
	"github.com/theapemachine/diagen/pkg/service"
	"github.com/theapemachine/diagen/pkg/stores"
	"github.com/theapemachine/diagen/pkg/tasks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the diagram agent over the A2A protocol",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := stores.NewInMemoryTaskStore()
		lifecycle := tasks.NewLifecycle(store)

		worker := service.NewWorker(
			store,
			lifecycle,
			provider.NewOpenAIProvider(),
			viper.GetInt64("worker.limit"),
		)

		manager := tasks.NewManager(store, lifecycle, worker)

		go janitor(store)

		srv := service.NewA2AServer(
			service.NewAgentCard(viper.GetString("server.url")),
			manager,
		)

		addr := viper.GetString("server.addr")
		log.Info("serving A2A agent", "addr", addr)

		return srv.Start(addr)
	},
}

// janitor sweeps old tasks out of the store on a fixed cadence.
func janitor(store stores.TaskStore) {
	interval := viper.GetDuration("purge.interval")
	if interval <= 0 {
		interval = time.Hour
	}

	maxAge := viper.GetDuration("purge.max_age")
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		store.PurgeOlderThan(maxAge)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
