package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/geoshield-inc/geoshield-api/api"
	"github.com/geoshield-inc/geoshield-api/background"
	"github.com/geoshield-inc/geoshield-api/logmodule"
	"github.com/geoshield-inc/geoshield-api/realtime"
	"github.com/geoshield-inc/geoshield-api/store"
	"github.com/geoshield-inc/geoshield-api/utils"
)

const defaultClientURL = "http://localhost:5173"

var (
	server *api.Server
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetDefault("server.port", "3001")
	viper.SetDefault("server.client_url", defaultClientURL)
	viper.SetDefault("server.base_path", api.DefaultBasePath)
	viper.SetDefault("verification.ttl", store.DefaultVerificationTTL)
	viper.SetDefault("verification.sweep_interval", background.DefaultSweepInterval)
	viper.SetDefault("realtime.send_buffer", realtime.DefaultSendBuffer)
	viper.SetDefault("i18n.lang", "en")
	viper.SetDefault("metrics.prefix", "geoshield")
	viper.SetDefault("metrics.interval", time.Minute)

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("geoshield")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// clientOrigins splits the comma separated list of browser origins
func clientOrigins() []string {
	origins := []string{}
	for _, o := range strings.Split(viper.GetString("server.client_url"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func main() {
	var configFile string

	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		cancel()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelShutdown()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		sentry.Flush(2 * time.Second)

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	if viper.GetString("server.api_url") == "" {
		log.WithField("prefix", "init").Fatal("server.api_url is not configured")
	}

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Metrics
	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:   viper.GetString("metrics.prefix"),
		Reporter: logmodule.NewStatsReporter("metrics"),
	}, viper.GetDuration("metrics.interval"))
	defer closer.Close()
	log.WithField("prefix", "init").Info("Initialized metrics")

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded i18n bundle")

	safeZones, err := store.LoadSafeZones(viper.GetString("seed.file"))
	if err != nil {
		log.Panic(err)
	}
	core := store.NewMemoryStore(safeZones, viper.GetDuration("verification.ttl"))
	log.WithField("prefix", "init").Infof("Initialized store with %d safe zones", len(safeZones))

	origins := clientOrigins()

	hub := realtime.NewHub(origins, viper.GetInt("realtime.send_buffer"), scope)
	go hub.Run(ctx)
	log.WithField("prefix", "init").Info("Initialized realtime hub")

	bg := background.New(core, viper.GetDuration("verification.sweep_interval"), scope)
	go func() {
		if err := bg.Run(ctx); err != nil {
			log.WithField("prefix", "init").Error(err)
		}
	}()

	// Init http server
	server = api.NewServer(core, hub, scope, api.Options{
		BasePath:      viper.GetString("server.base_path"),
		ClientOrigins: origins,
		Language:      viper.GetString("i18n.lang"),
		Version:       viper.GetString("server.version"),
	})
	log.WithField("prefix", "init").Infof("Initialized http server for %s", viper.GetString("server.api_url"))

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
