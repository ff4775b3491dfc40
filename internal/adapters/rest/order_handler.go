package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mahabubulhasibshawon/delivery-hub/internal/application"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/domain"
)

func (h *handler) createOrder(c *gin.Context) {
	var body createOrderRequest
	if !bindAndValidate(c, &body, h.validate) {
		return
	}

	req, _ := requesterFrom(c)
	order, err := h.orders.CreateOrder(c.Request.Context(), req, application.CreateOrderInput{
		PackageDescription: body.PackageDescription,
		PickupAddress:      body.PickupAddress,
		DeliveryAddress:    body.DeliveryAddress,
		Amount:             body.Amount,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        order.ID,
		"sender_id": order.SenderID,
		"status":    order.Status,
		"message":   "Order created successfully",
	})
}

func (h *handler) getOrder(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	req, _ := requesterFrom(c)
	order, err := h.orders.GetOrder(c.Request.Context(), req, id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *handler) listOrders(c *gin.Context) {
	var q listOrdersQuery
	if !bindQuery(c, &q) {
		return
	}

	req, _ := requesterFrom(c)
	orders, err := h.orders.ListOrders(c.Request.Context(), req, domain.ListQuery{
		Type:      q.Type,
		Status:    q.Status,
		Limit:     q.Limit,
		PartnerID: q.PartnerID,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, gin.H{"orders": out, "total": len(out)})
}

func (h *handler) updateStatus(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	var body updateStatusRequest
	if !bindAndValidate(c, &body, h.validate) {
		return
	}

	req, _ := requesterFrom(c)
	d, err := h.orders.UpdateStatus(c.Request.Context(), req, id, body.Status, body.DeliveryPartnerID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": d.OrderID, "status": d.To, "updated": true})
}

func (h *handler) cancelOrder(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	req, _ := requesterFrom(c)
	d, err := h.orders.CancelOrder(c.Request.Context(), req, id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": d.OrderID, "status": d.To, "message": "Order cancelled successfully"})
}

func (h *handler) earnings(c *gin.Context) {
	req, _ := requesterFrom(c)
	e, err := h.orders.Earnings(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toEarningsResponse(e))
}

// orderID parses the :id path segment. A malformed id cannot name an
// order, so it is reported as not found.
func (h *handler) orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Order not found", "error": "not_found"})
		return 0, false
	}
	return id, true
}
