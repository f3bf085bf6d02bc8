package main

import (
	"os"
	"strconv"

	"hotel/config"
	"hotel/helper"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

const usage = "usage: migrate up|down|step-up|drop|version|force <version>"

func main() {
	logger.InitLogger()

	if len(os.Args) < 2 {
		log.Fatal().Msg(usage)
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	var err error

	switch action := os.Args[1]; action {
	case "up":
		err = helper.Up(cfg)
	case "down":
		err = helper.Down(cfg)
	case "step-up":
		err = helper.StepUp(cfg)
	case "drop":
		err = helper.Drop(cfg)
	case "version":
		err = helper.Version(cfg)
	case "force":
		if len(os.Args) < 3 {
			log.Fatal().Msg(usage)
		}

		version, convErr := strconv.Atoi(os.Args[2])
		if convErr != nil {
			log.Fatal().Err(convErr).Msg("version must be an integer")
		}

		err = helper.Force(cfg, version)
	default:
		log.Fatal().Str("action", action).Msg(usage)
	}

	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
}
