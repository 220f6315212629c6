package helper_util_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	helper_util "github.com/pulsecollective/pulse/api/util/helper"
)

func paginationFor(t *testing.T, rawQuery string) (int, int, int) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/articles?"+rawQuery, nil)
	return helper_util.GetPaginationParams(c)
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, 10, 0},
		{"explicit", "page=3&limit=20", 3, 20, 40},
		{"zero page clamps", "page=0&limit=500", 1, 100, 0},
		{"negative page clamps", "page=-4", 1, 10, 0},
		{"zero limit falls back", "limit=0", 1, 10, 0},
		{"limit capped at 100", "limit=101", 1, 100, 0},
		{"non numeric falls back", "page=abc&limit=xyz", 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, offset := paginationFor(t, tt.query)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "berlin-after-dark", helper_util.Slugify("Berlin After Dark"))
	assert.Equal(t, "mix-042-live-panorama", helper_util.Slugify("  Mix #042: Live @ Panorama!  "))
	assert.Equal(t, "", helper_util.Slugify("!!!"))
}
