package controllers

import (
	"context"
	"net/http"

	"github.com/dailyneed/storefront-backend/api/responses"
	"github.com/dailyneed/storefront-backend/internal/cart"
	"github.com/dailyneed/storefront-backend/pkg/logger"
)

// CartGet returns the current cart contents.
func CartGet(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dto, err := svc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// CartAdd puts a product in the cart at quantity 1. Adding a product already
// in the cart changes nothing.
func CartAdd(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartMutation(svc.Add, logg)
}

// CartIncrease bumps a product's quantity, creating the line when absent.
func CartIncrease(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartMutation(svc.Increase, logg)
}

// CartDecrease lowers a product's quantity, removing the line at zero.
func CartDecrease(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartMutation(svc.Decrease, logg)
}

func cartMutation(op func(ctx context.Context, productID int) (*cart.CartDTO, error), logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithProductID(ctx, productID)
		}

		dto, err := op(ctx, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
