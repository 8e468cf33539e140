package services

import "github.com/mustafa3m/TastyTable-final-1/entity"

// Decision is the three-valued outcome of an order access check. Keeping
// deny and not-found apart lets the HTTP layer choose how much to reveal.
type Decision int

const (
	DecisionAllow Decision = iota
	DecisionDeny
	DecisionNotFound
)

type OrderOp int

const (
	OpRead OrderOp = iota
	OpUpdate
	OpDelete
)

// AuthorizeOrder decides whether the requester may perform op on the order.
//
// Admins may do anything to any order. Owners may always read their own
// orders but may update or delete them only while the status is Pending.
// Everyone else is denied. A nil order maps to DecisionNotFound so lookup
// and policy stay a single call site.
func AuthorizeOrder(order *entity.Order, requesterID uint, isAdmin bool, op OrderOp) Decision {
	if order == nil {
		return DecisionNotFound
	}
	if isAdmin {
		return DecisionAllow
	}
	if order.UserID != requesterID {
		return DecisionDeny
	}
	if op == OpRead {
		return DecisionAllow
	}
	if !IsPending(order.Status) {
		return DecisionDeny
	}
	return DecisionAllow
}
