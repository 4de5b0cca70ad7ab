package handler

import (
	"giglance/internal/usecase"
)

var (
	authHandler     *AuthHandler
	catalogHandler  *CatalogHandler
	checkoutHandler *CheckoutHandler
	orderHandler    *OrderHandler
	chatHandler     *ChatHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	checkoutUseCase *usecase.CheckoutUseCase,
	orderUseCase *usecase.OrderUseCase,
	chatUseCase *usecase.ChatUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase)
	checkoutHandler = NewCheckoutHandler(checkoutUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	chatHandler = NewChatHandler(chatUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetCheckoutHandler() *CheckoutHandler {
	return checkoutHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}
