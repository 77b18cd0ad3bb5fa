package models

// AssetKind classifies a fungible asset on the transfer ledger.
type AssetKind string

const (
	AssetKindPayment AssetKind = "payment"
	AssetKindRevenue AssetKind = "revenue"
	AssetKindShare   AssetKind = "share"
)

// Asset is a fungible asset registered with the transfer ledger.
type Asset struct {
	Base
	Symbol      string    `gorm:"not null;uniqueIndex" json:"symbol"`
	Kind        AssetKind `gorm:"not null" json:"kind"`
	PropertyID  *uint     `json:"property_id,omitempty"`
	TotalSupply int64     `gorm:"type:bigint;not null;default:0" json:"total_supply"`
}

// AssetBalance is a holder's balance of one asset.
type AssetBalance struct {
	AssetID string `gorm:"primaryKey" json:"asset_id"`
	Holder  string `gorm:"primaryKey" json:"holder"`
	Amount  int64  `gorm:"type:bigint;not null;default:0" json:"amount"`
}

// AssetAllowance is the amount a spender may move out of an owner's balance.
type AssetAllowance struct {
	AssetID string `gorm:"primaryKey" json:"asset_id"`
	Owner   string `gorm:"primaryKey" json:"owner"`
	Spender string `gorm:"primaryKey" json:"spender"`
	Amount  int64  `gorm:"type:bigint;not null;default:0" json:"amount"`
}
