// Command gridwalk is the absolute-movement demo: WASD/arrows step the
// entity one cell per press on a fixed lattice, space jumps, steppable
// obstacles form platforms to climb.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/hexaturn/gridwalk/audio"
	"github.com/hexaturn/gridwalk/engine"
	"github.com/hexaturn/gridwalk/events"
	"github.com/hexaturn/gridwalk/input"
	"github.com/hexaturn/gridwalk/logging"
	"github.com/hexaturn/gridwalk/motion"
	"github.com/hexaturn/gridwalk/scene"
)

var (
	sceneFlag = flag.String("scene", "", "Path to a scene yaml (default: embedded gridwalk scene)")
	logFlag   = flag.String("log", "", "Write a json log to this file")
	debugFlag = flag.Bool("debug", false, "Log at debug level")
	muteFlag  = flag.Bool("mute", false, "Disable audio feedback")
)

func main() {
	// Terminal must be reset before the panic reaches the user
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\ngridwalk crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	log := logging.Nop()
	if *logFlag != "" {
		var err error
		log, err = logging.New(*logFlag, *debugFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer log.Sync()
	}

	sc, err := loadScene()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, _, err := sc.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	queue := events.NewQueue()
	router := events.NewRouter()
	controller := motion.NewController(cfg, queue)

	player := audio.NewPlayer(log, *muteFlag)
	defer player.Close()
	router.Register(player)

	game := engine.New(engine.Config{
		Screen:     screen,
		Title:      sc.Name,
		Controller: controller,
		Binding:    input.Absolute(),
		Queue:      queue,
		Router:     router,
		Log:        log,
	})
	game.SetStatus("wasd move · space jump · q quit")

	if err := game.Run(); err != nil {
		log.Error("run failed", zap.Error(err))
	}
}

func loadScene() (*scene.Scene, error) {
	if *sceneFlag != "" {
		return scene.Load(*sceneFlag)
	}
	return scene.Default("gridwalk")
}
