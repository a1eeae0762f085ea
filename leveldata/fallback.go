package leveldata

import "github.com/automoto/nightwarden/gamemath"

const builtinTile = 16.0

// builtinLayout is the fallback maze used when no TMX level ships with the
// binary. '#' is a wall tile; markers: 'P' player spawn, 'W' warden spawn,
// 'R' respawn point, digits are patrol waypoints in order.
var builtinLayout = []string{
	"########################################",
	"#0             #            #         1#",
	"#              #            #          #",
	"#    ####      #     ###    #    ###   #",
	"#       #      #       #         #     #",
	"#       #      ####    #         #     #",
	"#       #              #    ######     #",
	"#   W   #####          #               #",
	"#                      #        ###    #",
	"#         ######       #          #    #",
	"#              #       #####      #    #",
	"#              #                  #    #",
	"#   ####       #        ####           #",
	"#      #       #           #           #",
	"#      #   #####           #     ####  #",
	"#      #                   #        #  #",
	"#      #####    ######     #        #  #",
	"#               #          #####    #  #",
	"#  R            #                   #  #",
	"#  P            #      ####            #",
	"#3              #         #           2#",
	"########################################",
}

// BuiltinLevel constructs the fallback level.
func BuiltinLevel() *Level {
	level := &Level{
		Name:   "builtin",
		Width:  len(builtinLayout[0]) * int(builtinTile),
		Height: len(builtinLayout) * int(builtinTile),
	}

	waypoints := map[byte]gamemath.Vec2{}
	for y, row := range builtinLayout {
		for x := 0; x < len(row); x++ {
			cx := float64(x)*builtinTile + builtinTile/2
			cy := float64(y)*builtinTile + builtinTile/2
			switch c := row[x]; c {
			case '#':
				level.Walls = append(level.Walls, WallRect{
					X: float64(x) * builtinTile,
					Y: float64(y) * builtinTile,
					W: builtinTile,
					H: builtinTile,
				})
			case 'P':
				level.PlayerSpawn = gamemath.Vec2{X: cx, Y: cy}
			case 'W':
				level.WardenSpawn = gamemath.Vec2{X: cx, Y: cy}
			case 'R':
				level.RespawnPoint = gamemath.Vec2{X: cx, Y: cy}
				level.HasRespawn = true
			case '0', '1', '2', '3':
				waypoints[c] = gamemath.Vec2{X: cx, Y: cy}
			}
		}
	}

	for _, c := range []byte{'0', '1', '2', '3'} {
		if wp, ok := waypoints[c]; ok {
			level.Waypoints = append(level.Waypoints, wp)
		}
	}

	return level
}
