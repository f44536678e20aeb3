package domain

import "errors"

const (
	StatusFresh    = "fresh"
	StatusExpired  = "expired"
	StatusConsumed = "consumed"

	CategoryOthers = "Others"
)

// FoodCategories is the fixed category set; anything unrecognized falls back
// to CategoryOthers.
var FoodCategories = []string{
	"Vegetables",
	"Fruits",
	"Dairy",
	"Meat",
	"Seafood",
	"Beverages",
	"Condiments",
	"Leftovers",
	"Frozen",
	CategoryOthers,
}

var (
	MessageFailedBodyRequest = "failed to process request body"

	ErrParseUUID = errors.New("failed to parse UUID")
)
