// Command sandbox is the free-roam demo: held WASD drifts the entity
// continuously across the plane, collectibles award score on contact.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/hexaturn/gridwalk/audio"
	"github.com/hexaturn/gridwalk/collect"
	"github.com/hexaturn/gridwalk/engine"
	"github.com/hexaturn/gridwalk/events"
	"github.com/hexaturn/gridwalk/input"
	"github.com/hexaturn/gridwalk/logging"
	"github.com/hexaturn/gridwalk/motion"
	"github.com/hexaturn/gridwalk/scene"
)

var (
	sceneFlag = flag.String("scene", "", "Path to a scene yaml (default: embedded sandbox scene)")
	logFlag   = flag.String("log", "", "Write a json log to this file")
	debugFlag = flag.Bool("debug", false, "Log at debug level")
	muteFlag  = flag.Bool("mute", false, "Disable audio feedback")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nsandbox crashed: %v\n", r)
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
	cfg, placements, err := sc.Build()
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
	items := collect.NewSet(queue, placements...)

	player := audio.NewPlayer(log, *muteFlag)
	defer player.Close()
	router.Register(player)

	game := engine.New(engine.Config{
		Screen:     screen,
		Title:      sc.Name,
		Controller: controller,
		Items:      items,
		Binding:    input.Free(),
		Held:       input.NewHeld(),
		Queue:      queue,
		Router:     router,
		Log:        log,
	})
	game.SetStatus("hold wasd to move · space jump · q quit")

	if err := game.Run(); err != nil {
		log.Error("run failed", zap.Error(err))
	}
}

func loadScene() (*scene.Scene, error) {
	if *sceneFlag != "" {
		return scene.Load(*sceneFlag)
	}
	return scene.Default("sandbox")
}
