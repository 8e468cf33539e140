package services

import (
	"testing"

	"github.com/mustafa3m/TastyTable-final-1/entity"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizeOrder(t *testing.T) {
	pending := &entity.Order{UserID: 5, Status: StatusPending}
	paid := &entity.Order{UserID: 5, Status: StatusPaid}
	mixedCase := &entity.Order{UserID: 5, Status: "pending"}

	tests := []struct {
		name        string
		order       *entity.Order
		requesterID uint
		isAdmin     bool
		op          OrderOp
		want        Decision
	}{
		{"nil order is not found", nil, 5, false, OpRead, DecisionNotFound},
		{"nil order is not found even for admin", nil, 5, true, OpDelete, DecisionNotFound},

		{"owner reads own pending", pending, 5, false, OpRead, DecisionAllow},
		{"owner reads own paid", paid, 5, false, OpRead, DecisionAllow},
		{"owner updates own pending", pending, 5, false, OpUpdate, DecisionAllow},
		{"owner deletes own pending", pending, 5, false, OpDelete, DecisionAllow},
		{"owner updates own paid", paid, 5, false, OpUpdate, DecisionDeny},
		{"owner deletes own paid", paid, 5, false, OpDelete, DecisionDeny},
		{"pending compare is case-insensitive", mixedCase, 5, false, OpUpdate, DecisionAllow},

		{"stranger reads", pending, 7, false, OpRead, DecisionDeny},
		{"stranger updates", pending, 7, false, OpUpdate, DecisionDeny},
		{"stranger deletes", paid, 7, false, OpDelete, DecisionDeny},

		{"admin updates anyone's paid", paid, 99, true, OpUpdate, DecisionAllow},
		{"admin deletes anyone's pending", pending, 99, true, OpDelete, DecisionAllow},
		{"admin reads anyone's order", paid, 99, true, OpRead, DecisionAllow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AuthorizeOrder(tt.order, tt.requesterID, tt.isAdmin, tt.op)
			assert.Equal(t, tt.want, got)
		})
	}
}
