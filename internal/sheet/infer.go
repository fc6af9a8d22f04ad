package sheet

import (
	"strings"

	"github.com/jengzang/tripsheet-backend-go/internal/models"
)

// typeKeywords holds the classification groups in priority order; the first
// group with a substring match decides the type. The keyword sets are a
// fixed contract, not runtime configuration.
var typeKeywords = []struct {
	eventType models.EventType
	keywords  []string
}{
	{models.EventTypeFood, []string{"食", "餐", "牛舌", "拉麵"}},
	{models.EventTypeTransport, []string{"機", "鐵", "車", "移動"}},
	{models.EventTypeHotel, []string{"住", "飯店", "check-in"}},
	{models.EventTypeShopping, []string{"買", "逛"}},
}

// InferType classifies cell text into a coarse event category. Text is
// lower-cased first so Latin keywords like "check-in" match regardless of
// case; a cell matching several groups gets the highest-priority one.
func InferType(text string) models.EventType {
	lower := strings.ToLower(text)
	for _, group := range typeKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.eventType
			}
		}
	}
	return models.EventTypeSightseeing
}
