package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"edcstudio/internal/httplogger"
	"edcstudio/internal/logging"
)

func main() {
	logging.Init(logrus.InfoLevel)
	log := logging.Get()

	port := os.Getenv("HTTP_SERVER_PORT")
	if port == "" {
		port = "4000"
	}

	app := httplogger.NewServer().App()

	log.WithField("port", port).Info("http-logger listening")
	if err := app.Listen(":" + port); err != nil {
		log.WithError(err).Fatal("failed to start http-logger")
	}
}
