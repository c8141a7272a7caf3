package stardust

// RentStructure defines the storage deposit a node charges per virtual byte.
type RentStructure struct {
	VByteCost       uint32
	VByteFactorData uint8
	VByteFactorKey  uint8
}

// ProtocolParameters are the network-wide parameters a node reports.
type ProtocolParameters struct {
	Version       uint8
	NetworkName   string
	Bech32HRP     string
	MinPoWScore   uint64
	BelowMaxDepth uint8
	RentStructure RentStructure
	TokenSupply   uint64
}
