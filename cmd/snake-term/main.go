package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"systemsnake/internal/app"
	"systemsnake/internal/domain"
	"systemsnake/internal/render"
	"systemsnake/internal/storage"
	"systemsnake/internal/ui/term"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
)

func main() {
	seed := flag.Int64("seed", 0, "food placement seed (0 = time based)")
	bestFile := flag.String("best-file", "", "path of the best score file")
	tick := flag.Duration("tick", domain.DefaultTickPeriod, "initial tick period")
	minTick := flag.Duration("min-tick", domain.DefaultMinTickPeriod, "tick period floor")
	flag.Parse()
	defer glog.Flush()

	// tcell owns the terminal; package log output goes to glog's files.
	glog.CopyStandardLogTo("INFO")
	log.SetFlags(log.Lshortfile)

	if err := run(*seed, *bestFile, *tick, *minTick); err != nil {
		glog.Errorf("snake-term: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(seed int64, bestFile string, tick, minTick time.Duration) error {
	var store storage.Store
	if bestFile != "" {
		store = storage.NewFileStore(bestFile)
	} else if p, err := storage.DefaultPath(); err == nil {
		store = storage.NewFileStore(p)
	} else {
		log.Printf("Failed to resolve best score file, scores will not persist: %v", err)
		store = storage.NewMemoryStore(0)
	}

	gameCfg := domain.DefaultGameConfig()
	gameCfg.TickPeriod = tick
	gameCfg.MinTickPeriod = minTick

	application, err := app.NewApp(app.Config{
		Game:  gameCfg,
		Store: store,
		Seed:  seed,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		return err
	}
	defer application.Stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	renderer := render.NewRenderer(rand.New(rand.NewSource(time.Now().UnixNano())))
	ui := term.New(screen, renderer, application)

	glog.Infof("Terminal frontend started: tick=%v min=%v", tick, minTick)

	err = ui.Run(ctx)
	if errors.Is(err, term.ErrQuit) {
		return nil
	}
	return err
}
