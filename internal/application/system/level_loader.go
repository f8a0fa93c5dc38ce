package system

import (
	"fmt"
	"math"

	"github.com/younwookim/platcore/internal/domain/entity"
	"github.com/younwookim/platcore/internal/domain/geom"
	"github.com/younwookim/platcore/internal/infrastructure/config"
)

// Sprite keys used by the renderer
const (
	SpriteGrass    entity.Sprite = "grass"
	SpriteBrick    entity.Sprite = "brick"
	SpriteLava     entity.Sprite = "lava"
	SpritePlatform entity.Sprite = "platform"
	SpriteSlime    entity.Sprite = "slime"
	SpriteCrate    entity.Sprite = "crate"
	SpriteCoin     entity.Sprite = "coin"
	SpritePlayer   entity.Sprite = "player"
	SpriteNone     entity.Sprite = "" // not drawn
)

// spawnRule describes what a layout symbol turns into
type spawnRule struct {
	ctor   entity.Constructor
	sprite entity.Sprite
	merge  bool // extend an adjacent entity of the same symbol instead of spawning
}

var symbolTable = map[rune]spawnRule{
	config.SymbolGrass:    {entity.NewGrass, SpriteGrass, true},
	config.SymbolBrick:    {entity.NewBrick, SpriteBrick, true},
	config.SymbolHazard:   {entity.NewHazard, SpriteLava, true},
	config.SymbolPlatform: {entity.NewPlatform, SpritePlatform, true},
	config.SymbolReverser: {entity.NewReverser, SpriteNone, false},
	config.SymbolWalker:   {entity.NewWalker, SpriteSlime, false},
	config.SymbolBox:      {entity.NewBox, SpriteCrate, false},
	config.SymbolGoal:     {entity.NewGoal, SpriteCoin, false},
}

// mergeEpsilon absorbs float drift when tiles are not whole pixels
const mergeEpsilon = 1e-6

// Sign is a line of text drawn at a fixed position
type Sign struct {
	Text string
	Pos  geom.Vec
}

// Level is a built, ready-to-step level
type Level struct {
	Config  *config.LevelConfig
	World   *entity.World
	Player  *entity.Entity
	ScoreAt geom.Vec // where the level number is drawn
	Signs   []Sign
	Tile    geom.Vec
}

// BuildLevel converts a layout into a populated World.
//
// The tile size is the screen size divided by the grid. Runs of merging
// symbols become single entities: a cell extends the last entity of the
// same symbol in its row when that entity ends exactly at the cell and is
// one tile tall, otherwise the last one in its column when it ends exactly
// at the cell and is one tile wide. Merged entities go to the front of the
// update order, everything else is appended, and the player is updated
// first of all. Unknown symbols are ignored.
func BuildLevel(cfg *config.LevelConfig, params entity.Params, screenW, screenH float64) (*Level, error) {
	cols, rows := cfg.Columns(), cfg.Rows()
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("failed to build level %s: %w", cfg.ID, config.ErrInvalidLevel)
	}

	tile := geom.V(screenW/float64(cols), screenH/float64(rows))
	params.Tile = tile
	w := entity.NewWorld(params)

	lvl := &Level{
		Config: cfg,
		World:  w,
		Tile:   tile,
	}
	playerAt := geom.V(screenW/2, screenH/2)

	columns := make([]map[rune]*entity.Entity, cols)
	for i := range columns {
		columns[i] = make(map[rune]*entity.Entity)
	}

	for yi, row := range cfg.Layout {
		rowLast := make(map[rune]*entity.Entity)
		y := float64(yi) * tile.Y

		for xi, sym := range []rune(row) {
			if xi >= cols {
				break
			}
			x := float64(xi) * tile.X

			switch sym {
			case config.SymbolPlayer:
				playerAt = geom.V(x, y)
				continue
			case config.SymbolScore:
				lvl.ScoreAt = geom.V(x, y)
				continue
			case config.SymbolSign:
				lvl.Signs = append(lvl.Signs, Sign{Text: signText(cfg, len(lvl.Signs)), Pos: geom.V(x, y)})
				continue
			}

			rule, ok := symbolTable[sym]
			if !ok {
				continue
			}

			if rule.merge {
				if prev := rowLast[sym]; prev != nil && near(prev.Bounds.Right(), x) && near(prev.Bounds.H, tile.Y) {
					prev.Bounds.W += tile.X
					continue
				}
				if above := columns[xi][sym]; above != nil && near(above.Bounds.Bottom(), y) && near(above.Bounds.W, tile.X) {
					above.Bounds.H += tile.Y
					continue
				}
			}

			e, err := rule.ctor(geom.V(x, y), rule.sprite, w.Params())
			if err != nil {
				return nil, fmt.Errorf("failed to build level %s at row %d col %d: %w", cfg.ID, yi, xi, err)
			}

			if rule.merge {
				rowLast[sym] = e
				columns[xi][sym] = e
				w.SpawnFront(e)
			} else {
				w.Spawn(e)
			}
		}
	}

	player, err := entity.NewPlayer(playerAt, SpritePlayer, w.Params())
	if err != nil {
		return nil, fmt.Errorf("failed to build level %s: %w", cfg.ID, err)
	}
	w.SpawnFront(player)
	lvl.Player = player

	return lvl, nil
}

func signText(cfg *config.LevelConfig, i int) string {
	if i < len(cfg.Signs) {
		return cfg.Signs[i]
	}
	return ""
}

func near(a, b float64) bool {
	return math.Abs(a-b) < mergeEpsilon
}
