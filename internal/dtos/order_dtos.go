package dtos

import "github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"

type CreateOrderRequest struct {
	Name      string `json:"name" validate:"notblank"`
	Email     string `json:"email" validate:"notblank,email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	ProductID string `json:"productId"`
}

type CreateOrderResponse struct {
	Success bool         `json:"success"`
	Order   models.Order `json:"order"`
}
