// Command cosmodrift renders a simulated object field as terminal cells.
// Objects fly in from the far plane, cross the viewing plane and trigger
// tones; q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"cosmodrift/audio"
	"cosmodrift/config"
	"cosmodrift/registry"
	"cosmodrift/sim"
)

var kindRunes = map[uint8]rune{
	uint8(sim.KindComet):   '*',
	uint8(sim.KindCrystal): '◆',
	uint8(sim.KindSphere):  'o',
}

type app struct {
	screen        tcell.Screen
	width, height int

	reg    *registry.Registry
	handle registry.Handle

	sound *audio.SoundManager
	mute  bool

	// Effects already sounded, by queue position fingerprint
	lastEffectCount int
}

func newApp(seed int64, count int, configPath string, mute bool) (*app, error) {
	tuning := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		tuning = loaded
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	a := &app{
		screen: screen,
		reg:    registry.New(tuning),
		sound:  audio.NewSoundManager(),
		mute:   mute,
	}
	a.width, a.height = screen.Size()
	a.handle = a.reg.CreateSystem(count, 0, 0, seed)

	if !mute {
		if err := a.sound.Initialize(); err != nil {
			// Non-fatal, the field runs silent
			log.Printf("Audio initialization failed: %v", err)
			a.mute = true
		}
	}

	return a, nil
}

// project maps a world position onto screen cells. The focal length is the
// observer-to-plane distance, so objects on the viewing plane span the full
// screen and distant ones cluster toward the center.
func (a *app) project(x, y, z float32) (int, int, bool) {
	s, ok := a.reg.System(a.handle)
	if !ok {
		return 0, 0, false
	}
	vpW, vpH := s.Space.ViewportDimensions()

	focal := -s.Space.ObserverPosition.Z
	depth := z - s.Space.ObserverPosition.Z
	if depth < 1 {
		depth = 1
	}
	px := x * focal / depth
	py := y * focal / depth

	sx := int((px/vpW + 0.5) * float32(a.width))
	sy := int((-py/vpH + 0.5) * float32(a.height))
	if sx < 0 || sx >= a.width || sy < 0 || sy >= a.height {
		return 0, 0, false
	}
	return sx, sy, true
}

func colorOf(r, g, b, opacity float32) tcell.Color {
	return tcell.NewRGBColor(
		int32(r*opacity*255),
		int32(g*opacity*255),
		int32(b*opacity*255),
	)
}

func (a *app) draw() {
	a.screen.Clear()

	frame, err := a.reg.VisibleObjects(a.handle)
	if err != nil {
		return
	}

	// Trail particles under the objects
	for i := 0; i < frame.TrailCount(); i++ {
		x, y, ok := a.project(
			frame.TrailPositions[i*3],
			frame.TrailPositions[i*3+1],
			frame.TrailPositions[i*3+2])
		if !ok {
			continue
		}
		fade := frame.TrailColors[i*4+3]
		style := tcell.StyleDefault.Foreground(colorOf(
			frame.TrailColors[i*4],
			frame.TrailColors[i*4+1],
			frame.TrailColors[i*4+2],
			fade))
		a.screen.SetContent(x, y, '·', nil, style)
	}

	for i := 0; i < frame.Count(); i++ {
		x, y, ok := a.project(
			frame.Positions[i*3],
			frame.Positions[i*3+1],
			frame.Positions[i*3+2])
		if !ok {
			continue
		}
		r := kindRunes[frame.Kinds[i]]
		style := tcell.StyleDefault.Foreground(colorOf(
			frame.Colors[i*3],
			frame.Colors[i*3+1],
			frame.Colors[i*3+2],
			frame.Opacities[i]))
		a.screen.SetContent(x, y, r, nil, style)
	}

	// Live effects as rings at the crossing point
	for _, e := range a.reg.Effects() {
		x, y, ok := a.project(e.Position.X, e.Position.Y, e.Position.Z)
		if !ok {
			continue
		}
		left := float32(1)
		if e.Lifetime > 0 {
			left = 1 - e.Age/e.Lifetime
		}
		style := tcell.StyleDefault.Foreground(colorOf(
			e.Color[0], e.Color[1], e.Color[2], left))
		a.screen.SetContent(x, y, '◎', nil, style)
	}

	a.screen.Show()
}

// soundNewEffects plays a tone for each effect enqueued since the last tick
func (a *app) soundNewEffects() {
	effects := a.reg.Effects()
	if a.mute {
		a.lastEffectCount = len(effects)
		return
	}
	for i := a.lastEffectCount; i < len(effects); i++ {
		a.sound.PlayCrossing(effects[i].Kind)
	}
	a.lastEffectCount = len(effects)
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return false
		}
	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.screen.Sync()
	}
	return true
}

func (a *app) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now

			if err := a.reg.UpdateSystem(a.handle, dt); err != nil {
				log.Printf("Update failed: %v", err)
				return
			}
			a.reg.UpdateEffects(dt)
			a.soundNewEffects()
			a.draw()
		}
	}
}

func (a *app) cleanup() {
	a.sound.Cleanup()
	a.screen.Fini()
}

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "simulation seed")
	count := flag.Int("count", 0, "target object count (0 = tuning default)")
	configPath := flag.String("config", "", "optional tuning YAML")
	mute := flag.Bool("mute", false, "disable crossing tones")
	flag.Parse()

	a, err := newApp(*seed, *count, *configPath, *mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	a.run()
}
