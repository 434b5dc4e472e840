package awindomain

type CommissionGroup struct {
	GroupID    string   `json:"groupId,omitempty"`
	GroupCode  string   `json:"groupCode,omitempty"`
	GroupName  string   `json:"groupName,omitempty"`
	Type       string   `json:"type,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
	Currency   string   `json:"currency,omitempty"`

	// AdvertiserID não vem em cada grupo: é o campo advertiser do envelope
	// da resposta, anotado em cada grupo após a decodificação.
	AdvertiserID int `json:"advertiser,omitempty"`
}

// ResponseCommissionGroups é o envelope da resposta do recurso de grupos de
// comissão: o anunciante consultado e a lista de grupos.
type ResponseCommissionGroups struct {
	Advertiser       int               `json:"advertiser"`
	CommissionGroups []CommissionGroup `json:"commissionGroups"`
}
