package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/mock"
	"github.com/MKhiriev/go-library-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// countingStore считает обращения к Items, чтобы проверить кэширование.
type countingStore struct {
	LibraryStore
	itemsCalls int
}

func (c *countingStore) Items() []models.Metadata {
	c.itemsCalls++
	return c.LibraryStore.Items()
}

func newTestView(t *testing.T, items ...models.Metadata) (*LibraryView, *countingStore, *mock.MockCommandGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock.NewMockCommandGateway(ctrl)
	store := &countingStore{LibraryStore: NewLibraryStore(gw, nil, logger.Nop())}

	gw.EXPECT().GetAll(gomock.Any()).Return(items, nil)
	require.NoError(t, store.Reload(context.Background()))
	return NewLibraryView(store), store, gw
}

func titles(rows []models.Metadata) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Title
	}
	return out
}

func TestLibraryView_Rows(t *testing.T) {
	alpha := item("1", "Alpha")
	alpha.Tags = []string{"rpg"}
	alpha.Developer = strPtr("Nova Works")
	beta := item("2", "Beta")
	beta.Alias = []string{"B-side"}
	beta.Platform = models.SteamPlatform("620")
	gamma := item("3", "Gamma")
	gamma.Platform = models.OtherPlatform("itch.io", "")

	view, _, _ := newTestView(t, alpha, beta, gamma)

	tests := []struct {
		name  string
		query string
		regex bool
		want  []string
	}{
		{name: "empty query", want: []string{"Alpha", "Beta", "Gamma"}},
		{name: "title substring", query: "Al", want: []string{"Alpha"}},
		{name: "case sensitive", query: "alpha", want: []string{}},
		{name: "alias", query: "B-side", want: []string{"Beta"}},
		{name: "tag", query: "rpg", want: []string{"Alpha"}},
		{name: "developer", query: "Nova", want: []string{"Alpha"}},
		{name: "platform id", query: "620", want: []string{"Beta"}},
		{name: "platform name", query: "itch", want: []string{"Gamma"}},
		{name: "regex", query: "^(Alpha|Gamma)$", regex: true, want: []string{"Alpha", "Gamma"}},
		{name: "regex off treats query literally", query: "^Alpha$", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view.SetQuery(tt.query)
			view.SetRegex(tt.regex)

			rows, err := view.Rows()
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(rows))
		})
	}
}

func TestLibraryView_InvalidRegex(t *testing.T) {
	view, _, _ := newTestView(t, item("1", "Alpha"))
	view.SetQuery("([")
	view.SetRegex(true)

	rows, err := view.Rows()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter expression")
	assert.Empty(t, rows)

	view.SetRegex(false)
	rows, err = view.Rows()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLibraryView_RecomputesOnlyOnChange(t *testing.T) {
	view, store, gw := newTestView(t, item("1", "Alpha"), item("2", "Beta"))
	baseline := store.itemsCalls

	_, err := view.Rows()
	require.NoError(t, err)
	_, err = view.Rows()
	require.NoError(t, err)
	assert.Equal(t, baseline+1, store.itemsCalls)

	view.SetQuery("Be")
	rows, err := view.Rows()
	require.NoError(t, err)
	assert.Equal(t, []string{"Beta"}, titles(rows))
	assert.Equal(t, baseline+2, store.itemsCalls)

	gw.EXPECT().GetAll(gomock.Any()).Return([]models.Metadata{item("1", "Alpha"), item("2", "Beta"), item("3", "Beta 2")}, nil)
	require.NoError(t, store.Reload(context.Background()))

	rows, err = view.Rows()
	require.NoError(t, err)
	assert.Equal(t, []string{"Beta", "Beta 2"}, titles(rows))
	assert.Equal(t, baseline+3, store.itemsCalls)
}
