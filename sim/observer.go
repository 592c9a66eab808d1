package sim

// Observer is notified of rocket lifecycle events from inside Launch and Tick
// Implementations must not call back into the World
type Observer interface {
	RocketLaunched(r *Rocket)
	RocketExploded(r *Rocket, spawned int)
}

// Observers fans events out in order
type Observers []Observer

func (o Observers) RocketLaunched(r *Rocket) {
	for _, obs := range o {
		obs.RocketLaunched(r)
	}
}

func (o Observers) RocketExploded(r *Rocket, spawned int) {
	for _, obs := range o {
		obs.RocketExploded(r, spawned)
	}
}

type nopObserver struct{}

func (nopObserver) RocketLaunched(*Rocket)      {}
func (nopObserver) RocketExploded(*Rocket, int) {}
