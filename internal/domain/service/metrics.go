package service

import (
	"time"

	"carmarket/internal/domain/entity"
)

// MarketMetrics records marketplace counters. Implementations must be safe for
// concurrent use.
type MarketMetrics interface {
	RecordPurchaseTransition(to entity.PurchaseStatus)
	RecordOfferVersionConflict()
	RecordOfferCreated()
	RecordPriceAlert(subscribers int)
	RecordHTTPRequest(method, route string, status int, elapsed time.Duration)
}
