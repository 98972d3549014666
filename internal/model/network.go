// Package model defines domain records materialized by the sync services.
package model

type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)
