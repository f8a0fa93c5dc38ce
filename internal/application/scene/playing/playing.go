// Package playing provides the gameplay and end-of-run scenes.
package playing

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/platcore/internal/application/replay"
	"github.com/younwookim/platcore/internal/application/scene"
	"github.com/younwookim/platcore/internal/application/session"
	"github.com/younwookim/platcore/internal/application/state"
	"github.com/younwookim/platcore/internal/application/system"
	"github.com/younwookim/platcore/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorOverlay = color.RGBA{0, 0, 0, 128}

	spriteColors = map[entity.Sprite]color.RGBA{
		system.SpriteGrass:    {60, 140, 60, 255},
		system.SpriteBrick:    {150, 80, 60, 255},
		system.SpriteLava:     {220, 70, 30, 255},
		system.SpritePlatform: {120, 120, 140, 255},
		system.SpriteSlime:    {120, 200, 90, 255},
		system.SpriteCrate:    {170, 130, 70, 255},
		system.SpriteCoin:     {255, 215, 0, 255},
		system.SpritePlayer:   {100, 160, 230, 255},
	}
)

// Options configures the Playing scene
type Options struct {
	Session    *session.Session
	Input      *system.InputSystem
	Recorder   *replay.Recorder // nil disables recording
	RecordPath string           // where OnExit saves the recording
	Logger     *log.Logger
	ScreenW    int
	ScreenH    int
}

// Playing is the main gameplay scene
type Playing struct {
	session    *session.Session
	input      *system.InputSystem
	recorder   *replay.Recorder
	recordPath string
	logger     *log.Logger
	state      state.GameState
	screenW    int
	screenH    int
	saved      bool
}

// New creates a new Playing scene
func New(opts Options) *Playing {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Playing{
		session:    opts.Session,
		input:      opts.Input,
		recorder:   opts.Recorder,
		recordPath: opts.RecordPath,
		logger:     logger,
		state:      state.StatePlaying,
		screenW:    opts.ScreenW,
		screenH:    opts.ScreenH,
	}
}

// Update reads input, records it and advances the session by one frame
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	cmds := p.input.GetCommands()
	if cmds.Quit {
		return nil, ebiten.Termination
	}
	if cmds.Pause {
		p.state = p.state.Toggle()
	}
	if p.state != state.StatePlaying {
		return nil, nil
	}

	if cmds.Restart {
		if err := p.session.Restart(); err != nil {
			return nil, err
		}
		if p.recorder != nil {
			p.recorder.MarkRestart()
		}
	}

	in := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	out, err := p.session.Tick(in)
	if err != nil {
		return nil, err
	}
	if out == session.OutcomeFinished {
		p.state = state.StateComplete
		return NewComplete(p.input, p.session.Stats(), p.screenW, p.screenH), nil
	}
	return nil, nil
}

// State returns whether the scene is playing, paused or complete
func (p *Playing) State() state.GameState {
	return p.state
}

// Draw renders the level, its signs and the status line
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	lvl := p.session.Level()
	for _, e := range lvl.World.Entities() {
		c, ok := spriteColors[e.Sprite]
		if !ok {
			continue
		}
		b := e.Bounds
		ebitenutil.DrawRect(screen, b.X, b.Y, b.W, b.H, c)
	}

	for _, s := range lvl.Signs {
		ebitenutil.DebugPrintAt(screen, s.Text, int(s.Pos.X), int(s.Pos.Y))
	}
	ebitenutil.DebugPrintAt(screen, p.status(), int(lvl.ScoreAt.X), int(lvl.ScoreAt.Y))

	if p.state == state.StatePaused {
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-60, p.screenH/2-20)
	}
}

func (p *Playing) status() string {
	stats := p.session.Stats()
	return fmt.Sprintf("Level %d  Deaths %d", p.session.LevelNumber(), stats.Deaths)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("playing", "level", p.session.LevelNumber(), "recording", p.recorder != nil)
}

// OnExit saves the recording, if any
func (p *Playing) OnExit() {
	p.saveRecording()
}

func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recordPath == "" || p.saved {
		return
	}
	p.saved = true
	p.recorder.Stop()

	if err := p.recorder.Save(p.recordPath); err != nil {
		p.logger.Error("failed to save recording", "path", p.recordPath, "err", err)
		return
	}
	p.logger.Info("recording saved", "path", p.recordPath, "frames", p.recorder.FrameCount())
}
