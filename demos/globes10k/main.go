// globes10k spawns thousands of spinning globes that bounce around the
// screen. A stress test for the monocle event pump: every globe gets its
// own ticks each frame.
package main

import (
	"flag"
	"log"
	"math/rand/v2"

	"github.com/phanxgames/monocle"
)

const (
	screenW = 1280
	screenH = 720
	size    = 64
)

type globe struct {
	obj *monocle.GameObject
}

// bounce reflects the globe off the screen edges.
func (g *globe) bounce() {
	o := g.obj
	if o.X < 0 {
		o.X, o.DX = 0, -o.DX
	} else if o.X > screenW-size {
		o.X, o.DX = screenW-size, -o.DX
	}
	if o.Y < 0 {
		o.Y, o.DY = 0, -o.DY
	} else if o.Y > screenH-size {
		o.Y, o.DY = screenH-size, -o.DY
	}
}

func main() {
	dir := flag.String("dir", "examples/earthball/res", "resource directory holding earthball.json")
	count := flag.Int("n", 10_000, "number of globes")
	shot := flag.Bool("screenshot", false, "write a screenshot after 30 frames and exit")
	flag.Parse()

	e, err := monocle.New(monocle.Config{
		Video:         monocle.VideoConfig{Title: "monocle: globes", Width: screenW, Height: screenH, FrameRate: 60},
		ResourceDirs:  []string{*dir},
		ShowFPS:       true,
		ScreenshotDir: "docs/demos/globes10k",
	})
	if err != nil {
		log.Fatal(err)
	}
	defer e.Close()
	e.SetClearColor(15, 15, 23)

	if err := e.Resources().LoadResmap("earthball.json"); err != nil {
		log.Fatal(err)
	}

	for range *count {
		obj, err := e.CreateObject(rand.Float64()*(screenW-size), rand.Float64()*(screenH-size), "earth")
		if err != nil {
			log.Fatal(err)
		}
		obj.DX = (rand.Float64() - 0.5) * 8
		obj.DY = (rand.Float64() - 0.5) * 8
		obj.F = rand.Float64() * 30
		obj.DF = 0.5 + rand.Float64()
		obj.UserData = &globe{obj: obj}
	}

	err = e.Run(func(e *monocle.Engine) error {
		for {
			ev, err := e.PopEvent()
			if err != nil {
				return err
			}
			switch ev := ev.(type) {
			case monocle.SystemEvent:
				if ev.Type == monocle.EventQuit {
					return nil
				}
			case monocle.KeyEvent:
				if ev.Type == monocle.EventKeyDown && ev.Key == monocle.KeyEscape {
					e.InjectQuit()
				}
			case monocle.ObjectEvent:
				if ev.Type == monocle.EventPreRender && ev.Object != nil {
					ev.Object.UserData.(*globe).bounce()
				}
				if *shot && ev.Type == monocle.EventPreRender && ev.Object == nil {
					switch e.Frame() {
					case 30:
						e.Screenshot("thumbnail")
					case 32:
						e.InjectQuit()
					}
				}
			}
		}
	})
	if err != nil {
		log.Fatal(err)
	}
}
