package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/mock"
	"github.com/MKhiriev/go-library-keeper/models"
)

func TestLookupService_DLSite(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mock.NewMockCommandGateway(ctrl)
		svc := NewLookupService(gw, logger.Nop())

		want := models.DLSiteInfo{Title: "Night Garden", Circle: "Moonlit"}
		gw.EXPECT().FetchDLSite(gomock.Any(), "RJ01").Return(want, nil)

		got, err := svc.DLSite(ctx, " RJ01 ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("blank id never reaches the executor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewLookupService(mock.NewMockCommandGateway(ctrl), logger.Nop())

		_, err := svc.DLSite(ctx, "  ")
		require.True(t, IsValidation(err))
		assert.ErrorIs(t, err, ErrBlankValue)
	})

	t.Run("gateway error is returned as is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mock.NewMockCommandGateway(ctrl)
		svc := NewLookupService(gw, logger.Nop())

		boom := errors.New("scrape failed")
		gw.EXPECT().FetchDLSite(gomock.Any(), "RJ02").Return(models.DLSiteInfo{}, boom)

		_, err := svc.DLSite(ctx, "RJ02")
		assert.ErrorIs(t, err, boom)
	})
}
