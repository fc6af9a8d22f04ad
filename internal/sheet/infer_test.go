package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jengzang/tripsheet-backend-go/internal/models"
)

func TestInferType(t *testing.T) {
	tests := []struct {
		text string
		want models.EventType
	}{
		{"早餐", models.EventTypeFood},
		{"仙台牛舌", models.EventTypeFood},
		{"一蘭拉麵", models.EventTypeFood},
		{"新幹線移動", models.EventTypeTransport},
		{"成田機場", models.EventTypeTransport},
		{"搭車前往淺草", models.EventTypeTransport},
		{"飯店 Check-in", models.EventTypeHotel},
		{"CHECK-IN", models.EventTypeHotel},
		{"買伴手禮", models.EventTypeShopping},
		{"逛街", models.EventTypeShopping},
		{"東京鐵塔", models.EventTypeTransport}, // 鐵 is a transport keyword
		{"淺草寺", models.EventTypeSightseeing},
		{"", models.EventTypeSightseeing},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, InferType(tt.text))
		})
	}
}

func TestInferTypePriority(t *testing.T) {
	// A cell matching both food and transport keywords classifies as food,
	// the higher-priority group.
	assert.Equal(t, models.EventTypeFood, InferType("車站旁吃拉麵"))
	// Hotel vs shopping: hotel is checked first.
	assert.Equal(t, models.EventTypeHotel, InferType("住宿附近逛逛"))
}
