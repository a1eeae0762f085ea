package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLevel(t *testing.T) {
	level := BuiltinLevel()

	assert.Equal(t, "builtin", level.Name)
	assert.Equal(t, 640, level.Width)
	assert.Equal(t, 352, level.Height)
	assert.NotEmpty(t, level.Walls)

	require.Len(t, level.Waypoints, 4)
	assert.True(t, level.HasRespawn)

	pose, ok := level.SpawnForScene()
	require.True(t, ok)
	assert.Equal(t, level.RespawnPoint, pose)

	inBounds := func(x, y float64) bool {
		return x > 0 && x < float64(level.Width) && y > 0 && y < float64(level.Height)
	}
	assert.True(t, inBounds(level.PlayerSpawn.X, level.PlayerSpawn.Y))
	assert.True(t, inBounds(level.WardenSpawn.X, level.WardenSpawn.Y))
	for i, wp := range level.Waypoints {
		assert.True(t, inBounds(wp.X, wp.Y), "waypoint %d out of bounds", i)
	}
}

func TestBuiltinLevelBorderIsSolid(t *testing.T) {
	level := BuiltinLevel()

	walls := map[[2]float64]bool{}
	for _, w := range level.Walls {
		walls[[2]float64{w.X, w.Y}] = true
	}

	for x := 0; x < level.Width; x += int(builtinTile) {
		assert.True(t, walls[[2]float64{float64(x), 0}], "top border open at x=%d", x)
		assert.True(t, walls[[2]float64{float64(x), float64(level.Height) - builtinTile}],
			"bottom border open at x=%d", x)
	}
}

func TestSpawnForSceneWithoutRespawn(t *testing.T) {
	level := &Level{}
	_, ok := level.SpawnForScene()
	assert.False(t, ok)
}

func TestLoadOrFallbackOnMissingFile(t *testing.T) {
	level := LoadOrFallback(fstest.MapFS{}, "levels/missing.tmx")
	require.NotNil(t, level)
	assert.Equal(t, "builtin", level.Name)
}

func TestLoadOrFallbackNilFS(t *testing.T) {
	level := LoadOrFallback(nil, "levels/any.tmx")
	require.NotNil(t, level)
	assert.Equal(t, "builtin", level.Name)
}

func TestLoadLevelParsesMarkersAndWalls(t *testing.T) {
	const tmx = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="tiles.png" width="16" height="16"/>
 </tileset>
 <layer name="walls" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,0,0,1,
1,1,1,1
</data>
 </layer>
 <objectgroup name="markers">
  <object id="1" type="player_spawn" x="24" y="24"/>
  <object id="2" type="warden_spawn" x="40" y="24"/>
  <object id="3" type="respawn" x="24" y="24"/>
  <object id="4" type="waypoint" x="40" y="24">
   <properties><property name="index" type="int" value="1"/></properties>
  </object>
  <object id="5" type="waypoint" x="24" y="24">
   <properties><property name="index" type="int" value="0"/></properties>
  </object>
 </objectgroup>
</map>`

	fsys := fstest.MapFS{
		"levels/test.tmx": {Data: []byte(tmx)},
	}

	level, err := LoadLevel(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", level.Name)
	assert.Equal(t, 64, level.Width)
	assert.Equal(t, 48, level.Height)
	assert.Len(t, level.Walls, 10, "the ring of the 4x3 map minus the two open cells")

	assert.Equal(t, 24.0, level.PlayerSpawn.X)
	assert.Equal(t, 40.0, level.WardenSpawn.X)
	assert.True(t, level.HasRespawn)

	require.Len(t, level.Waypoints, 2)
	assert.Equal(t, 24.0, level.Waypoints[0].X, "waypoints must come back ordered by index")
	assert.Equal(t, 40.0, level.Waypoints[1].X)
}
