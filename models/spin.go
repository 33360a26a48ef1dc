package models

// PrizeType tags a wheel slot. Only card-type prizes have a persistence side
// effect; the rest are purely presentational.
type PrizeType string

const (
	PrizeTypeCard     PrizeType = "card"
	PrizeTypeDiscount PrizeType = "discount"
	PrizeTypeExtra    PrizeType = "extra"
	PrizeTypeBadLuck  PrizeType = "bad_luck"
)

// SpinResult is a transient spin outcome. It is never stored as an entity.
type SpinResult struct {
	Label string    `json:"label"`
	Type  PrizeType `json:"type"`
}

// WheelSlots is the fixed clockwise slot layout of the spin wheel. The order
// is load-bearing: slot resolution indexes into it from the top pointer.
var WheelSlots = []SpinResult{
	{Label: "Premium Card", Type: PrizeTypeCard},
	{Label: "20% OFF", Type: PrizeTypeDiscount},
	{Label: "1 More Try", Type: PrizeTypeExtra},
	{Label: "Gold Card", Type: PrizeTypeCard},
	{Label: "Bad Luck", Type: PrizeTypeBadLuck},
	{Label: "10% OFF", Type: PrizeTypeDiscount},
	{Label: "3 More Chances", Type: PrizeTypeExtra},
	{Label: "Platinum Card", Type: PrizeTypeCard},
}
