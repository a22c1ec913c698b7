package log

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pulseboard/pulseboard/utils/dotenv"
	"github.com/pulseboard/pulseboard/utils/flag"
)

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// This init function is only for testing cases, where the entry point is not
// main function. Unit test will fail with nil pointer dereference if we don't
// init here.
func init() {
	InitLogger()
}

func InitLogger() {
	logger = logrus.New()

	isProd := os.Getenv("PULSE_ENV") == dotenv.ProdEnv
	if isProd {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	// Send log to stderr, without json formatter in development for better
	// readability.
	logger.SetOutput(os.Stderr)

	Log = logger.WithFields(
		logrus.Fields{"service": flag.ServiceName, "is_development": !isProd},
	)
}
