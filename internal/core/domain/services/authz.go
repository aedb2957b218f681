package services

import (
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"
)

// Role is the acting user's role as established by the external credential
// collaborator. This core never derives roles itself; it only enforces what
// each role may do.
type Role string

const (
	// RoleAdmin may perform every action, including compliance overrides.
	RoleAdmin Role = "admin"

	// RoleDispatcher manages assignments, pairings and transit transitions.
	RoleDispatcher Role = "dispatcher"

	// RoleAccounts manages the payment transitions.
	RoleAccounts Role = "accounts"
)

// Action names an operation subject to authorization.
type Action string

const (
	// ActionAssignOrder covers committing resources to an order.
	ActionAssignOrder Action = "assign_order"

	// ActionAdvanceOrder covers the load/depart/deliver transitions.
	ActionAdvanceOrder Action = "advance_order"

	// ActionRecordPayment covers request-payment, confirm-paid and close.
	ActionRecordPayment Action = "record_payment"

	// ActionManagePairing covers truck-trailer pair and unpair.
	ActionManagePairing Action = "manage_pairing"

	// ActionOverrideCompliance covers assigning despite a failing gate check.
	ActionOverrideCompliance Action = "override_compliance"
)

// Actor is the authenticated caller on whose behalf an operation runs.
type Actor struct {
	ID   kernel.UUID
	Role Role
}

// Policy is the authorization rule set consumed by the command handlers.
// Keeping it a single explicit function decouples role gating from the
// transport layer: handlers ask the policy, never the request headers.
type Policy struct {
	allowed map[Action][]Role
}

// NewPolicy creates the production rule set.
func NewPolicy() Policy {
	return Policy{
		allowed: map[Action][]Role{
			ActionAssignOrder:        {RoleDispatcher},
			ActionAdvanceOrder:       {RoleDispatcher},
			ActionRecordPayment:      {RoleAccounts},
			ActionManagePairing:      {RoleDispatcher},
			ActionOverrideCompliance: {},
		},
	}
}

// Authorize returns nil when the actor's role may perform the action, or an
// ActionNotAllowedError otherwise. Admins may perform every action.
func (p Policy) Authorize(actor Actor, action Action) error {
	if actor.Role == RoleAdmin {
		return nil
	}

	for _, role := range p.allowed[action] {
		if actor.Role == role {
			return nil
		}
	}

	return errs.NewActionNotAllowedError(string(actor.Role), string(action))
}
