package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Warden = donburi.NewTag().SetName("Warden")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for collision and sensor queries
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvWarden = "Warden"
)
