package state

import "strings"

// ActionType is the base type of one slice operation. The dispatch pipeline
// decorates it with a lifecycle suffix before the reducer ever sees it.
type ActionType string

// Base action types for the five CRUD operations
const (
	FetchEntityList ActionType = "FETCH_ENTITY_LIST"
	FetchEntity     ActionType = "FETCH_ENTITY"
	CreateEntity    ActionType = "CREATE_ENTITY"
	UpdateEntity    ActionType = "UPDATE_ENTITY"
	DeleteEntity    ActionType = "DELETE_ENTITY"
)

// Phase marks where an operation is in its request/success/failure lifecycle.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseRequest
	PhaseSuccess
	PhaseFailure
)

const (
	suffixRequest = "_REQUEST"
	suffixSuccess = "_SUCCESS"
	suffixFailure = "_FAILURE"
)

// Request returns the pending form of the action type.
func (t ActionType) Request() string { return string(t) + suffixRequest }

// Success returns the resolved form of the action type.
func (t ActionType) Success() string { return string(t) + suffixSuccess }

// Failure returns the rejected form of the action type.
func (t ActionType) Failure() string { return string(t) + suffixFailure }

// Action is a tagged message dispatched to the reducer. Payload carries the
// response data on success; Message carries the failure text on rejection.
type Action struct {
	Type    string
	Payload any
	Message string
}

// Classify splits a full action type back into its base type and phase.
// Types without a known suffix or base come back as PhaseNone.
func Classify(full string) (ActionType, Phase) {
	var base string
	var phase Phase

	switch {
	case strings.HasSuffix(full, suffixRequest):
		base, phase = strings.TrimSuffix(full, suffixRequest), PhaseRequest
	case strings.HasSuffix(full, suffixSuccess):
		base, phase = strings.TrimSuffix(full, suffixSuccess), PhaseSuccess
	case strings.HasSuffix(full, suffixFailure):
		base, phase = strings.TrimSuffix(full, suffixFailure), PhaseFailure
	default:
		return "", PhaseNone
	}

	switch ActionType(base) {
	case FetchEntityList, FetchEntity, CreateEntity, UpdateEntity, DeleteEntity:
		return ActionType(base), phase
	}
	return "", PhaseNone
}
