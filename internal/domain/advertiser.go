package domain

import (
	"time"
)

type AdvertiserStatus string

const (
	AdvertiserStatusActive   AdvertiserStatus = "ACTIVE"
	AdvertiserStatusInactive AdvertiserStatus = "INACTIVE"
)

// Advertiser é um anunciante da rede de afiliados registrado no serviço. O
// ID é gerado internamente; ExternalID é o identificador na rede.
type Advertiser struct {
	ID         string           `json:"id"`
	ExternalID int              `json:"external_id"`
	Name       string           `json:"name"`
	Status     AdvertiserStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type UpdateAdvertiserRequest struct {
	ID     string  `json:"id"`
	Name   *string `json:"name,omitempty"`
	Status *string `json:"status,omitempty"`
}

type CreateAdvertiserRequest struct {
	ExternalID int    `json:"external_id"`
	Name       string `json:"name"`
}
