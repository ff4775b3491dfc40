package repository

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/mahabubulhasibshawon/delivery-hub/internal/domain"
)

func TestBuildListQuery(t *testing.T) {
	query, args := buildListQuery(domain.OrderFilter{
		SenderID: "USR1",
		Statuses: []domain.OrderStatus{domain.StatusDelivered, domain.StatusCancelled},
		Limit:    5,
	})

	assert.Contains(t, query, "WHERE sender_id = $1 AND status = ANY($2)")
	assert.Contains(t, query, "ORDER BY created_at DESC, id DESC LIMIT $3")
	assert.Equal(t, []interface{}{"USR1", pq.Array([]string{"delivered", "cancelled"}), 5}, args)
}

func TestBuildListQuery_Unfiltered(t *testing.T) {
	query, args := buildListQuery(domain.OrderFilter{Limit: -1})

	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "LIMIT")
	assert.Empty(t, args)
}

func TestBuildListQuery_PartnerScope(t *testing.T) {
	query, args := buildListQuery(domain.OrderFilter{PartnerID: "USRP"})

	assert.Contains(t, query, "WHERE delivery_partner_id = $1")
	assert.Equal(t, []interface{}{"USRP"}, args)
}
