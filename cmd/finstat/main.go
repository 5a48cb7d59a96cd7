package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/nzai/finstat/cmd/finstat/command"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	lc := zap.NewDevelopmentConfig()
	lc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger, err := lc.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	undo := zap.ReplaceGlobals(logger)
	defer undo()

	// .env is optional
	if err := godotenv.Load(); err == nil {
		zap.L().Debug("load .env success")
	}

	app := &cli.Command{
		Name:  "finstat",
		Usage: "quarterly financial statements from the market observation post system",
	}

	for _, cmd := range command.Commands {
		app.Commands = append(app.Commands, cmd.Command())
	}

	if err = app.Run(context.Background(), os.Args); err != nil {
		zap.L().Fatal(err.Error())
	}
}
