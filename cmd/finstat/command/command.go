package command

import (
	"github.com/google/uuid"
	"github.com/nzai/finstat/config"
	"github.com/nzai/finstat/utils"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

type Commander interface {
	Command() *cli.Command
}

var Commands = []Commander{}

func RegisterCommand(cmd Commander) {
	Commands = append(Commands, cmd)
}

func configFlag(dest *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "config",
		Usage:       "specify toml config `file`, FINSTAT_* environment variables override it",
		Required:    false,
		Value:       "",
		Destination: dest,
	}
}

// prepare load config and replace global logger, call the returned func when done
func prepare(configPath string) (*config.Config, func(), error) {
	c, err := config.Parse(configPath)
	if err != nil {
		zap.S().Errorw("failed to parse config", "error", err, "path", configPath)
		return nil, nil, err
	}

	logger, err := utils.NewLogger(utils.LogOptions{
		Level:      c.Log.Level,
		File:       c.Log.File,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
	})
	if err != nil {
		zap.S().Errorw("failed to create logger", "error", err)
		return nil, nil, err
	}

	logger = logger.With(zap.String("run", uuid.NewString()))
	undo := zap.ReplaceGlobals(logger)

	return c, func() {
		logger.Sync()
		undo()
	}, nil
}
