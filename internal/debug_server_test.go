package internal

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatsPage_RendersSortedRows(t *testing.T) {
	// Given
	data := pageData{
		Title: "webchat",
		Up:    true,
		Rows:  sortedRows(map[string]any{"requests": 3, "fallbacks": 1}),
	}
	rec := httptest.NewRecorder()

	// When
	err := statsPage.Execute(rec, data)

	// Then
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "<b>up</b>")
	require.Less(t, strings.Index(body, "fallbacks"), strings.Index(body, "requests"))
}


func TestSortedRows_OrdersByName(t *testing.T) {
	rows := sortedRows(map[string]any{"rss bytes": 10, "cpu percent": "0.5", "requests": 2})

	require.Equal(t, []StatRow{
		{Name: "cpu percent", Value: "0.5"},
		{Name: "requests", Value: 2},
		{Name: "rss bytes", Value: 10},
	}, rows)
}
