package main

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/geomline/spatial"
)

// screenState carries the interactive controls shared between the input
// goroutine and the render loop.
type screenState struct {
	yaw    atomic.Int64 // extra Y rotation, in 1/100 rad
	fall   atomic.Int64 // extra fall offset, in 1/100 units
	paused atomic.Bool
}

// runScreenDemo draws the star animation on a tcell screen. Arrow keys
// adjust the rotation and fall offsets, space pauses, q/ESC quits, and
// a resize re-syncs the screen.
func runScreenDemo(frames int, delay time.Duration) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err = s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	var st screenState
	quit := make(chan struct{})

	go func() {
		defer close(quit)
		for {
			switch ev := s.PollEvent().(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return
				case tcell.KeyLeft:
					st.yaw.Add(-15)
				case tcell.KeyRight:
					st.yaw.Add(15)
				case tcell.KeyUp:
					st.fall.Add(-100)
				case tcell.KeyDown:
					st.fall.Add(100)
				case tcell.KeyRune:
					switch ev.Rune() {
					case 'q', 'Q':
						return
					case ' ':
						st.paused.Store(!st.paused.Load())
					}
				}
			case *tcell.EventResize:
				s.Sync()
			}
		}
	}()

	base, names := starScene()
	rotationStep := 2 * math.Pi / float64(frames)
	fallStep := fallTotal / float64(frames)

	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			if !st.paused.Load() {
				frame++
			}

			w, h := s.Size()
			if w <= 15 || h <= 8 {
				continue
			}

			buf, err := spatial.NewBuffer[float64](w, h-1, spatial.FlatProjection())
			if err != nil {
				return err
			}

			angle := float64(frame%frames)*rotationStep + float64(st.yaw.Load())/100
			fall := math.Mod(float64(frame)*fallStep, fallTotal) + float64(st.fall.Load())/100
			star := starFrame(base, names, angle, fall)
			if err = buf.AddPolyline(star); err != nil {
				return err
			}

			s.Clear()
			drawText(s, 1, 0, tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
				fmt.Sprintf("geomline demo | frame %d | arrows:adjust space:pause q:quit", frame))
			for y := 0; y < h-1; y++ {
				row, _ := buf.Row(y)
				for x, c := range row {
					if c == ' ' {
						continue
					}
					style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
					if c == '*' {
						style = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
					}
					s.SetContent(x, y+1, c, nil, style)
				}
			}
			s.Show()
		}
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}
