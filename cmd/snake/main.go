package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"systemsnake/internal/app"
	"systemsnake/internal/audio"
	"systemsnake/internal/domain"
	"systemsnake/internal/render"
	"systemsnake/internal/storage"
	"systemsnake/internal/ui/graphics"
	"systemsnake/internal/ui/graphics/screens"
	"systemsnake/internal/ui/types"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	seed := flag.Int64("seed", 0, "food placement seed (0 = time based)")
	bestFile := flag.String("best-file", "", "path of the best score file")
	mute := flag.Bool("mute", false, "start with the playlist muted")
	noAudio := flag.Bool("no-audio", false, "disable the audio playlist")
	tick := flag.Duration("tick", domain.DefaultTickPeriod, "initial tick period")
	minTick := flag.Duration("min-tick", domain.DefaultMinTickPeriod, "tick period floor")
	flag.Parse()

	store, err := openStore(*bestFile)
	if err != nil {
		log.Printf("Failed to open best score file, scores will not persist: %v", err)
	}

	gameCfg := domain.DefaultGameConfig()
	gameCfg.TickPeriod = *tick
	gameCfg.MinTickPeriod = *minTick

	application, err := app.NewApp(app.Config{
		Game:  gameCfg,
		Store: store,
		Seed:  *seed,
	})
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := application.Start(ctx); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	var player *audio.Player
	if !*noAudio {
		player, err = newPlayer(ctx, *mute)
		if err != nil {
			log.Printf("Failed to set up audio: %v", err)
		}
	}

	engine := graphics.NewEngine(player)
	renderer := render.NewRenderer(rand.New(rand.NewSource(time.Now().UnixNano())))
	engine.RegisterScreens(screens.NewGameScreen(engine, renderer))
	engine.SetState(application.GetState())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		shutdown(application, player)
		cancel()
		os.Exit(0)
	}()

	go handleAppEvents(application, engine)
	go handleUIEvents(application, engine, player)

	if err := engine.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}

	shutdown(application, player)
}

func openStore(path string) (storage.Store, error) {
	if path == "" {
		p, err := storage.DefaultPath()
		if err != nil {
			return storage.NewMemoryStore(0), err
		}
		path = p
	}
	fs := storage.NewFileStore(path)
	log.Printf("Best score file: %s", fs.Path())
	return fs, nil
}

func newPlayer(ctx context.Context, mute bool) (*audio.Player, error) {
	playlist, err := audio.NewPlaylist(audio.DefaultTracks)
	if err != nil {
		return nil, err
	}
	playlist.SetMuted(mute)

	audioCtx := ebitenaudio.NewContext(audio.SampleRate)
	player := audio.NewPlayer(ctx, playlist, audio.NewFetcher(nil), audio.NewMP3Decoder(audioCtx))
	player.Prefetch()

	return player, nil
}

func shutdown(application *app.App, player *audio.Player) {
	application.Stop()
	if player != nil {
		player.Close()
	}
}

func handleAppEvents(application *app.App, engine *graphics.Engine) {
	for event := range application.Events() {
		switch event.Type {
		case app.AppEventStateUpdated, app.AppEventPhaseChanged:
			engine.SetState(application.GetState())

		case app.AppEventTick:
			if payload, ok := event.Payload.(app.TickPayload); ok && payload.HasVacated {
				engine.RecordVacated(payload.Vacated, payload.StateOrder)
			}

		case app.AppEventNewBest:
			if payload, ok := event.Payload.(app.NewBestPayload); ok {
				engine.SetMessage(fmt.Sprintf("HIGH_SCORE %d", payload.BestScore))
			}

		case app.AppEventGameOver:
			if payload, ok := event.Payload.(app.GameOverPayload); ok {
				log.Printf("Game over: cause=%v score=%d best=%d won=%v",
					payload.Cause, payload.Score, payload.BestScore, payload.Won)
			}
			engine.SetState(application.GetState())

		case app.AppEventError:
			if payload, ok := event.Payload.(app.ErrorPayload); ok {
				engine.SetError(payload.Message)
			}

		case app.AppEventQuit:
			log.Println("App quit, shutting down")
			shutdown(application, player)
			os.Exit(0)
		}
	}
}

func handleUIEvents(application *app.App, engine *graphics.Engine, player *audio.Player) {
	for event := range engine.Events() {
		switch event.Type {
		case types.UIEventSteer:
			data := event.Payload.(types.SteerData)
			if err := application.SendSteer(data.Direction); err != nil {
				log.Printf("Main: failed to send steer: %v", err)
			}

		case types.UIEventToggle:
			application.Toggle()

		case types.UIEventReset:
			application.Reset()

		case types.UIEventQuit:
			shutdown(application, player)
			os.Exit(0)
		}
	}
}
