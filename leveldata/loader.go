package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/nightwarden/gamemath"
)

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
//
// Expected layout: a tile layer named "walls" for occluding geometry, and
// an object group "markers" with typed point objects: "player_spawn",
// "warden_spawn", "respawn", and "waypoint" (ordered by an "index" int
// property).
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "walls" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				level.Walls = append(level.Walls, WallRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	type indexedWaypoint struct {
		pos   gamemath.Vec2
		index int
	}
	var waypoints []indexedWaypoint

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "markers" {
			continue
		}
		for _, o := range og.Objects {
			pos := gamemath.Vec2{X: o.X, Y: o.Y}
			switch o.Type {
			case "player_spawn":
				level.PlayerSpawn = pos
			case "warden_spawn":
				level.WardenSpawn = pos
			case "respawn":
				level.RespawnPoint = pos
				level.HasRespawn = true
			case "waypoint":
				waypoints = append(waypoints, indexedWaypoint{
					pos:   pos,
					index: o.Properties.GetInt("index"),
				})
			}
		}
	}

	sort.Slice(waypoints, func(i, j int) bool {
		return waypoints[i].index < waypoints[j].index
	})
	for _, wp := range waypoints {
		level.Waypoints = append(level.Waypoints, wp.pos)
	}

	return level, nil
}

// LoadOrFallback loads the named TMX level, falling back to the built-in
// level when the file is absent or unparsable.
func LoadOrFallback(fsys fs.FS, tmxPath string) *Level {
	if fsys != nil {
		if level, err := LoadLevel(fsys, tmxPath); err == nil {
			return level
		}
	}
	return BuiltinLevel()
}
