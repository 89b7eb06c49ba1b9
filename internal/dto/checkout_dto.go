package dto

import "github.com/google/uuid"

type CreateCheckoutRequest struct {
	StoreId    *uuid.UUID `json:"store_id" validate:"required_without=LandingId"`
	LandingId  *uuid.UUID `json:"landing_id" validate:"required_without=StoreId"`
	BuyerEmail string     `json:"buyer_email" validate:"omitempty,email"`
}

type CreateCheckoutResponse struct {
	InitPoint         string `json:"init_point"`
	PreferenceId      string `json:"preference_id"`
	ExternalReference string `json:"external_reference"`
}

type PaymentPendingRequest struct {
	StoreId    uuid.UUID `json:"store_id" validate:"required"`
	Reference  string    `json:"reference"`
	BuyerEmail string    `json:"buyer_email" validate:"omitempty,email"`
}
