package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mo-shahab/pong-arcade/audio"
	"github.com/mo-shahab/pong-arcade/canvas"
	"github.com/mo-shahab/pong-arcade/config"
	"github.com/mo-shahab/pong-arcade/game"
	"github.com/mo-shahab/pong-arcade/paddle"
	"github.com/mo-shahab/pong-arcade/terminal"
	"github.com/mo-shahab/pong-arcade/wsserver"
)

// Playfield used when there is no terminal to measure
var headlessCanvas = canvas.Fixed{Width: 800, Height: 600}

func main() {
	configPath := flag.String("config", "pong.toml", "Path to the TOML config file")
	headless := flag.Bool("headless", false, "Run without a terminal and only stream to spectators")
	demo := flag.Bool("demo", false, "Let the AI play both paddles")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}

	if *headless {
		runHeadless(cfg)
		return
	}

	if err := runTerminal(cfg, *demo); err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}
}

func runHeadless(cfg config.Config) {
	wsh := wsserver.NewWebSocketHandler()

	engine := game.NewEngine(cfg.Tuning(), headlessCanvas)
	engine.AddRenderSink(wsh)
	engine.AddScoreboard(wsh)
	engine.Initialize(paddle.AI)
	engine.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		engine.Stop()
		wsh.Close()
		os.Exit(0)
	}()

	http.Handle("/ws", wsh)
	log.Printf("Spectator server starting at ws://localhost%s/ws", cfg.Spectate.Addr)
	log.Fatal(http.ListenAndServe(cfg.Spectate.Addr, nil))
}

func runTerminal(cfg config.Config, demo bool) error {
	// tcell owns the terminal, so logs go to a file or nowhere
	closeLog, err := redirectLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := terminal.Open(cfg.Terminal)
	if err != nil {
		return err
	}
	defer screen.Fini()

	engine := game.NewEngine(cfg.Tuning(), screen)
	engine.SetInput(screen)
	engine.AddRenderSink(screen)
	engine.AddScoreboard(screen)

	if cfg.Audio.Enabled {
		player, err := audio.Open(cfg.Audio)
		if err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			defer player.Close()
			engine.SetSounder(player)
		}
	}

	if cfg.Spectate.Enabled {
		wsh := wsserver.NewWebSocketHandler()
		defer wsh.Close()
		engine.AddRenderSink(wsh)
		engine.AddScoreboard(wsh)

		mux := http.NewServeMux()
		mux.Handle("/ws", wsh)
		go func() {
			if err := http.ListenAndServe(cfg.Spectate.Addr, mux); err != nil {
				log.Printf("Spectator server stopped: %v", err)
			}
		}()
	}

	right := paddle.Human
	if demo {
		right = paddle.AI
		screen.SetStatus("demo")
	}
	engine.Initialize(right)

	events := screen.Events()
	ticker := time.NewTicker(cfg.Tuning().TickRate)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch screen.HandleEvent(ev) {
			case terminal.ActionQuit:
				return nil
			case terminal.ActionResetScore:
				engine.ResetScore()
			case terminal.ActionPause:
				if engine.TogglePause() {
					screen.SetStatus("paused")
				} else if demo {
					screen.SetStatus("demo")
				} else {
					screen.SetStatus("")
				}
			}
		case <-ticker.C:
			engine.Tick()
		}
	}
}

func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
