package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"date only", "2023-04-05", time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2023-04-05T10:11:12Z", time.Date(2023, 4, 5, 10, 11, 12, 0, time.UTC)},
		{"space separated", "2023-04-05 10:11:12", time.Date(2023, 4, 5, 10, 11, 12, 0, time.UTC)},
		{"empty", "", epoch},
		{"garbage", "last tuesday", epoch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(ParseDate(tt.input)), "got %v", ParseDate(tt.input))
		})
	}
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, StatusCompleted, ParseStatus("Completed"))
	assert.Equal(t, StatusOnHold, ParseStatus(" onhold "))
	assert.Equal(t, StatusUnknown, ParseStatus(""))
	assert.Equal(t, StatusUnknown, ParseStatus("beta"))
}

func TestItem_Host(t *testing.T) {
	host, err := Item{URL: "https://games.example.com/threads/123"}.Host()
	require.NoError(t, err)
	assert.Equal(t, "games.example.com", host)

	host, err = Item{URL: "https://F95Zone.to/threads/x"}.Host()
	require.NoError(t, err)
	assert.Equal(t, "f95zone.to", host)

	_, err = Item{URL: "relative/path"}.Host()
	assert.True(t, errors.Is(err, ErrNoHost))

	_, err = Item{URL: "://missing-scheme"}.Host()
	assert.Error(t, err)
}

func TestDomains(t *testing.T) {
	domains, invalid := Domains(sampleItems())

	assert.Equal(t, []string{"example.com", "other.org"}, domains)
	require.Len(t, invalid, 1)
	assert.Equal(t, "Broken", invalid[0].Title)
}

func TestDomains_CaseInsensitiveHosts(t *testing.T) {
	items := []Item{
		{Title: "Upper", URL: "https://F95Zone.to/x"},
		{Title: "Lower", URL: "https://f95zone.to/y"},
	}

	domains, invalid := Domains(items)
	assert.Equal(t, []string{"f95zone.to"}, domains)
	assert.Empty(t, invalid)
	assert.True(t, MatchDomain(items[0], "f95zone.to"))
	assert.Len(t, Filter(items, FilterState{Status: FilterAny, Domain: "f95zone.to"}), 2)
}
