package request

import (
	"store-reservation/internal/usecase/commands"
)

type RegisterStoreRequest struct {
	StoreName   string `json:"store_name" binding:"required"`
	StoreAddr   string `json:"store_addr" binding:"required"`
	Description string `json:"description"`
}

func (r RegisterStoreRequest) ToCommand(partnerID string) commands.RegisterStoreRequest {
	return commands.RegisterStoreRequest{
		PartnerID:   partnerID,
		StoreName:   r.StoreName,
		StoreAddr:   r.StoreAddr,
		Description: r.Description,
	}
}

type UpdateStoreRequest struct {
	StoreAddr   string `json:"store_addr" binding:"required"`
	Description string `json:"description"`
}

func (r UpdateStoreRequest) ToCommand(partnerID, storeName string) commands.UpdateStoreInfoRequest {
	return commands.UpdateStoreInfoRequest{
		PartnerID:   partnerID,
		StoreName:   storeName,
		StoreAddr:   r.StoreAddr,
		Description: r.Description,
	}
}
