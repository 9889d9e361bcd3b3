package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lithrlnd12/keyhubcentral/internal/application/dto"
)

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$50.00", dto.FormatUSD(decimal.NewFromInt(50)))
	assert.Equal(t, "$0.00", dto.FormatUSD(decimal.Zero))
	assert.Equal(t, "$1,500.00", dto.FormatUSD(decimal.NewFromInt(1500)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50.0%", dto.FormatPercent(50))
	assert.Equal(t, "66.7%", dto.FormatPercent(200.0/3))
}

func TestDefaultPage(t *testing.T) {
	p := dto.PageRequest{Limit: 0, Offset: -4}
	p.DefaultPage()
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 0, p.Offset)
}
