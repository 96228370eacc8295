package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/milieu/game"
	"github.com/oomph-ac/milieu/gen"
	"github.com/oomph-ac/milieu/oerror"
	"github.com/oomph-ac/milieu/session"
	"github.com/oomph-ac/milieu/settings"
	"github.com/oomph-ac/milieu/telemetry"
	"github.com/sirupsen/logrus"
)

// The following program runs a milieu session headlessly, driving the actor with a scripted input and
// logging how the collected geometry changes.
func main() {
	configPath := flag.String("config", "config.toml", "path to the settings file")
	ticks := flag.Int("ticks", -1, "number of ticks to run, overriding the settings file")
	seed := flag.Int64("seed", 0, "terrain seed, overriding the settings file when non-zero")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	if *debug {
		log.Level = logrus.DebugLevel
	}

	conf, err := settings.Load(*configPath)
	if err != nil {
		log.Fatalln(err)
	}
	if *ticks >= 0 {
		conf.Host.Ticks = *ticks
	}
	if *seed != 0 {
		conf.World.Seed = *seed
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Fatalf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(time.Second * 5)
	}

	if os.Getenv("PPROF_ENABLED") != "" || conf.Host.StatsViewer {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	metrics := telemetry.New()
	if conf.Host.MetricsAddr != "" {
		go func() {
			defer sentry.Recover()
			log.Infof("serving metrics on %s", conf.Host.MetricsAddr)
			if err := http.ListenAndServe(conf.Host.MetricsAddr, metrics.Handler()); err != nil {
				log.Errorf("metrics server stopped: %v", err)
			}
		}()
	}

	logger := slog.New(newLogrusHandler(log))
	rng := rand.New(rand.NewPCG(uint64(conf.World.Seed), uint64(conf.World.Seed)>>32|1))
	s := session.New(conf, gen.NewTerrain(conf.World.Seed, rng), session.Config{Logger: logger, Metrics: metrics})
	log.Infof("session %s started with seed %d", s.ID(), conf.World.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	run(ctx, log, s, conf)
}

// maxTickSamples bounds the tick durations kept for the summary logged on exit.
const maxTickSamples = 1 << 16

// run ticks the session at the configured rate until the tick budget runs out or ctx is cancelled.
func run(ctx context.Context, log *logrus.Logger, s *session.Session, conf settings.Settings) {
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("session panic: %v", err)
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("session", s.ID().String())
			})
			hub.Recover(oerror.New("%v", err))
			hub.Flush(time.Second * 5)
		}
	}()

	dt := 1 / float64(conf.Host.TickRate)
	ticker := time.NewTicker(time.Second / time.Duration(conf.Host.TickRate))
	defer ticker.Stop()

	var (
		sc     script
		digest uint64
		times  []float64
	)
	defer func() {
		if len(times) == 0 {
			return
		}
		log.Infof("tick time: mean %.3fms, median %.3fms, p99 %.3fms, stddev %.3fms",
			game.Mean(times), game.Median(times), game.Percentile(times, 0.99), game.StandardDeviation(times))
	}()
	for tick := 0; conf.Host.Ticks == 0 || tick < conf.Host.Ticks; tick++ {
		select {
		case <-ctx.Done():
			log.Info("interrupted, stopping")
			return
		case <-ticker.C:
		}

		start := time.Now()
		f := s.Tick(dt, sc.next(tick))
		if len(times) == maxTickSamples {
			times = append(times[:0], times[maxTickSamples/2:]...)
		}
		times = append(times, float64(time.Since(start).Microseconds())/1000)
		if f.Action != nil {
			log.Debugf("tick %d: %s at %v", f.Tick, f.Action.State, f.Action.Pos)
		}
		if d := f.Geometry.Digest(); d != digest {
			digest = d
			log.Infof("tick %d: geometry changed (%d quads, digest %016x) pos=(%s, %s, %s)",
				f.Tick, f.Geometry.Quads(), d, f.Debug[0].Position, f.Debug[1].Position, f.Debug[2].Position)
		}
	}
	log.Infof("finished after %d ticks", conf.Host.Ticks)
}
