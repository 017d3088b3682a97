package main

import (
	"log"

	"github.com/milk9111/streetrunner/events"
	"github.com/milk9111/streetrunner/sim"
)

const headlessTPS = 60

// runHeadless steps the session at a fixed rate and logs a summary once per
// simulated second.
func runHeadless(s *sim.Session, frames int, debug bool) {
	beams := 0
	s.Bus.On(events.TopicBeamShown, func(any) { beams++ })
	if debug {
		logBeams(s.Bus)
	}

	dt := 1.0 / headlessTPS
	for i := 1; i <= frames; i++ {
		s.Update(dt)
		if i%headlessTPS != 0 {
			continue
		}
		p := s.Store.Player
		road, active := s.Spawner.Active()
		log.Printf("sim: t=%.0fs roads=%d player=(%.1f, %.1f) beam=%v %s",
			s.Elapsed(), len(s.Store.Roads()), p.Position.X, p.Position.Z, active, road)
	}
	log.Printf("sim: done after %d frames, %d beams", frames, beams)
}
