package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"personalityPairing/pkg/cmd"
	"personalityPairing/pkg/errs"
	"personalityPairing/pkg/logging"
)

func main() {
	for _, envFile := range []string{".env.default", ".env.local"} {
		err := godotenv.Overload(envFile)
		if err != nil && !os.IsNotExist(err) {
			errs.Handle(errors.Wrapf(err, "failed to load %s", envFile), true)
		}
	}

	logCfg, err := logging.LoadConfig()
	errs.Handle(err, true)

	err = logging.Init(logCfg)
	errs.Handle(err, true)

	err = cmd.Execute()
	errs.Handle(err, true)
}
