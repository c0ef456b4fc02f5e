package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"ultimate-holdem-server/internal/config"
	"ultimate-holdem-server/internal/mux"
	"ultimate-holdem-server/pkg/db"
	"ultimate-holdem-server/pkg/model"
)

const readTimeout = time.Second * 5

// simulations can take a while
const writeTimeout = time.Second * 60

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (defaults to the configured address)")
var record = flag.Bool("record", false, "record simulated rounds in the database")

func main() {
	flag.Parse()
	setupLogger()

	// fail fast
	opts, err := config.Instance().Table.Options()
	if err != nil {
		logrus.WithError(err).Fatal("invalid table configuration")
	}

	var store mux.RoundStore
	if *record {
		if err := db.Migrate(); err != nil {
			logrus.WithError(err).Fatal("could not run migrations")
		}

		store = model.Recorder{}
	}

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	listen := config.Instance().Addr
	if *addr != "" {
		listen = *addr
	}

	srv := &http.Server{
		Addr:         listen,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, opts, store))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"addr":    srv.Addr,
		"version": Version,
		"record":  *record,
	}).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
