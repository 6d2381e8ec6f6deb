package store

import (
	"log"
	"time"

	"github.com/asynkron/protoactor-go/actor"

	"reststate/internal/state"
	"reststate/internal/utils"
)

// Listener observes every applied action in dispatch order, together with
// the state after applying it. Listeners run inside the state actor, so
// they must not dispatch back into the same store.
type Listener func(action state.Action, after state.EntityState)

// Message types for the state actor
type (
	dispatchMsg struct {
		Action state.Action
	}

	getStateMsg struct{}

	subscribeMsg struct {
		Listener Listener
	}
)

// stateActor owns the single state record. The mailbox serializes all
// dispatches, so the reducer always sees a consistent current state.
type stateActor struct {
	current   state.EntityState
	listeners []Listener
}

func newStateActor() actor.Actor {
	return &stateActor{current: state.DefaultEntityState()}
}

// Receive handles incoming messages
func (a *stateActor) Receive(context actor.Context) {
	switch msg := context.Message().(type) {
	case *actor.Started:
		log.Printf("StateActor started")

	case *actor.Stopping:
		log.Printf("StateActor stopping")

	case *actor.Stopped:
		log.Printf("StateActor stopped")

	case *actor.Restarting:
		log.Printf("StateActor restarting")

	case *dispatchMsg:
		a.current = state.Reduce(a.current, msg.Action)
		for _, listener := range a.listeners {
			listener(msg.Action, a.current)
		}
		context.Respond(a.current)

	case *getStateMsg:
		context.Respond(a.current)

	case *subscribeMsg:
		a.listeners = append(a.listeners, msg.Listener)
		context.Respond(a.current)
	}
}

// Store is the dispatch pipeline for one entity slice.
type Store struct {
	system  *actor.ActorSystem
	pid     *actor.PID
	metrics *utils.MetricsCollector
	timeout time.Duration
}

// New spawns the state actor and returns a store bound to it.
func New(system *actor.ActorSystem, metrics *utils.MetricsCollector) *Store {
	if metrics == nil {
		metrics = utils.NewMetricsCollector()
	}

	props := actor.PropsFromProducer(newStateActor)
	pid := system.Root.Spawn(props)

	return &Store{
		system:  system,
		pid:     pid,
		metrics: metrics,
		timeout: 5 * time.Second,
	}
}

// Metrics returns the collector shared with this store's callers.
func (s *Store) Metrics() *utils.MetricsCollector {
	return s.metrics
}

// Dispatch applies one action through the reducer and returns the resulting
// state. Dispatches from any goroutine are serialized by the actor mailbox.
func (s *Store) Dispatch(a state.Action) (state.EntityState, error) {
	s.metrics.IncrementDispatches()

	future := s.system.Root.RequestFuture(s.pid, &dispatchMsg{Action: a}, s.timeout)
	result, err := future.Result()
	if err != nil {
		return state.EntityState{}, utils.NewAppError(utils.ErrTimeout, "state dispatch timed out", err)
	}
	return result.(state.EntityState), nil
}

// State returns the current state record.
func (s *Store) State() (state.EntityState, error) {
	future := s.system.Root.RequestFuture(s.pid, &getStateMsg{}, s.timeout)
	result, err := future.Result()
	if err != nil {
		return state.EntityState{}, utils.NewAppError(utils.ErrTimeout, "state read timed out", err)
	}
	return result.(state.EntityState), nil
}

// Subscribe registers a listener for every subsequently applied action and
// returns the state as of registration.
func (s *Store) Subscribe(listener Listener) (state.EntityState, error) {
	future := s.system.Root.RequestFuture(s.pid, &subscribeMsg{Listener: listener}, s.timeout)
	result, err := future.Result()
	if err != nil {
		return state.EntityState{}, utils.NewAppError(utils.ErrTimeout, "subscribe timed out", err)
	}
	return result.(state.EntityState), nil
}
