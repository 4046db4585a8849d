package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	OrderIDKey contextKey = "order_id"
	TokenKey   contextKey = "token"
)

func SetOrderContext(ctx context.Context, orderID uuid.UUID) context.Context {
	return context.WithValue(ctx, OrderIDKey, orderID.String())
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetOrderIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	orderIDVal := ctx.Value(OrderIDKey)
	if orderIDVal == nil {
		return uuid.Nil, false
	}

	orderIDStr, ok := orderIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	orderID, err := uuid.Parse(orderIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return orderID, true
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}
