package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	_ "github.com/go-sql-driver/mysql"

	"github.com/lotterybot/lotterybot/config"
	"github.com/lotterybot/lotterybot/repository"
	"github.com/lotterybot/lotterybot/supervisor"
)

func main() {
	rootCmd := cobra.Command{
		Use: "supervisor",
	}
	rootCmd.AddCommand(
		startSupervisorCommand(),
		workerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startSupervisorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the bot worker supervisor",
		Run: func(cmd *cobra.Command, args []string) {
			startSupervisor()
		},
	}
}

func startSupervisor() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)
	configRepo := repository.NewBotConfig()

	workerCommand := conf.Supervisor.WorkerCommand
	if workerCommand == "" {
		workerCommand = os.Args[0]
	}
	runner := supervisor.NewExecRunner(workerCommand, logger)

	sup := supervisor.NewSupervisor(
		provider, configRepo, runner,
		conf.Supervisor.CheckInterval,
		conf.Supervisor.StopGracePeriod,
		logger,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sup.Run(ctx)
	fmt.Println("Shutdown supervisor successfully")
}
