package components

import "github.com/yohamta/donburi"

// TimeData is the injected clock every timed wait in the module polls
// against. It advances once per control cycle; tests write it directly for
// deterministic scheduling.
type TimeData struct {
	Now   float64 // Seconds since the scene started
	Delta float64 // Seconds advanced by the last control cycle
	Frame int64
}

var Time = donburi.NewComponentType[TimeData]()
