package models

import "gitlab.com/zlyzol/uledger/internal/common"

type Stats struct {
	AccountCount  int         `json:"accountCount" bson:"accountCount"`
	TransferCount int         `json:"transferCount" bson:"transferCount"`
	TotalSupply   common.U256 `json:"totalSupply" bson:"totalSupply"`
	TimeRunning   string      `json:"timeRunning" bson:"-"`
}
