package sim

// Updater advances by dt seconds once per frame.
type Updater interface {
	Update(dt float64)
}

type Scheduler struct {
	systems []Updater
}

func NewScheduler(systems ...Updater) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system Updater) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(dt float64) {
	for _, system := range s.systems {
		system.Update(dt)
	}
}

func (s *Scheduler) Systems() []Updater {
	systems := make([]Updater, 0, len(s.systems))
	return append(systems, s.systems...)
}
