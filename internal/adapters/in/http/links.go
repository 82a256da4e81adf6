package http

import (
	"net/http"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/generated/servers"
)

// orderLinks builds the hypermedia links for an order representation.
// Every order links to itself; a modifiable order links to its update
// endpoint; every lifecycle action allowed from the current status
// contributes one link. The set of action links is derived from the
// transition table, so clients discover exactly the moves the state
// machine would accept.
func orderLinks(orderID kernel.UUID, status order.Status) []servers.Link {
	base := "/orders/" + orderID.String()

	links := []servers.Link{
		{Rel: "self", Href: base, Method: http.MethodGet},
	}

	if status.ValidateModify() == nil {
		links = append(links, servers.Link{Rel: "update", Href: base, Method: http.MethodPut})
	}

	for _, action := range status.AvailableActions() {
		switch action {
		case order.ActionPay:
			links = append(links, servers.Link{Rel: "payment", Href: base + "/payment", Method: http.MethodPut})
		case order.ActionCancel:
			links = append(links, servers.Link{Rel: "cancel", Href: base, Method: http.MethodDelete})
		case order.ActionPrepare:
			links = append(links, servers.Link{Rel: "prepare", Href: base + "/status?status=preparing", Method: http.MethodPut})
		case order.ActionMarkReady:
			links = append(links, servers.Link{Rel: "ready", Href: base + "/status?status=ready", Method: http.MethodPut})
		case order.ActionDeliver:
			links = append(links, servers.Link{Rel: "deliver", Href: base + "/status?status=delivered", Method: http.MethodPut})
		case order.ActionUnknown:
		}
	}

	return links
}
