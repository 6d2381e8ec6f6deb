package state

import "reststate/internal/models"

// Reduce maps the current state and one action to the next state. It is a
// pure function: no side effects, never errors. Actions it does not
// recognize leave the state unchanged.
func Reduce(s EntityState, a Action) EntityState {
	base, phase := Classify(a.Type)

	switch phase {
	case PhaseRequest:
		s.ErrorMessage = ""
		s.UpdateSuccess = false
		switch base {
		case FetchEntityList, FetchEntity:
			s.Loading = true
		case CreateEntity, UpdateEntity, DeleteEntity:
			s.Updating = true
		}
		return s

	case PhaseFailure:
		// Failures are uniform regardless of the originating operation.
		s.Loading = false
		s.Updating = false
		s.UpdateSuccess = false
		s.ErrorMessage = a.Message
		return s

	case PhaseSuccess:
		switch base {
		case FetchEntityList:
			s.Loading = false
			if list, ok := a.Payload.([]models.Entity); ok {
				s.Entities = list
			}
		case FetchEntity:
			s.Loading = false
			if e, ok := a.Payload.(models.Entity); ok {
				s.Entity = e
			}
		case CreateEntity, UpdateEntity:
			s.Updating = false
			s.UpdateSuccess = true
			if e, ok := a.Payload.(models.Entity); ok {
				s.Entity = e
			}
		case DeleteEntity:
			// The payload shape is irrelevant for deletes.
			s.Updating = false
			s.UpdateSuccess = true
		}
		return s
	}

	return s
}
