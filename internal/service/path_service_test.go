package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type spyOpener struct {
	opened []string
	err    error
}

func (o *spyOpener) Open(_ context.Context, path string) error {
	o.opened = append(o.opened, path)
	return o.err
}

func TestPathService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mock.NewMockCommandGateway(ctrl)
		svc := NewPathService(gw, &spyOpener{}, logger.Nop())

		gw.EXPECT().ResolvePath(gomock.Any(), "games/alpha").Return("/home/u/games/alpha", nil)

		abs, err := svc.Resolve(ctx, "  games/alpha ")
		require.NoError(t, err)
		assert.Equal(t, "/home/u/games/alpha", abs)
	})

	t.Run("blank path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewPathService(mock.NewMockCommandGateway(ctrl), &spyOpener{}, logger.Nop())

		_, err := svc.Resolve(ctx, "  ")
		assert.True(t, IsValidation(err))
	})

	t.Run("executor failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mock.NewMockCommandGateway(ctrl)
		svc := NewPathService(gw, &spyOpener{}, logger.Nop())

		boom := errors.New("no such path")
		gw.EXPECT().ResolvePath(gomock.Any(), "x").Return("", boom)

		_, err := svc.Resolve(ctx, "x")
		var perr *PathResolutionError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "x", perr.Path)
		assert.ErrorIs(t, err, boom)
	})
}

func TestPathService_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("opens the resolved path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mock.NewMockCommandGateway(ctrl)
		opener := &spyOpener{}
		svc := NewPathService(gw, opener, logger.Nop())

		gw.EXPECT().ResolvePath(gomock.Any(), "alpha").Return("/lib/alpha", nil)

		require.NoError(t, svc.Open(ctx, "alpha"))
		assert.Equal(t, []string{"/lib/alpha"}, opener.opened)
	})

	t.Run("resolution failure skips the opener", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mock.NewMockCommandGateway(ctrl)
		opener := &spyOpener{}
		svc := NewPathService(gw, opener, logger.Nop())

		gw.EXPECT().ResolvePath(gomock.Any(), "alpha").Return("", errors.New("bad"))

		require.Error(t, svc.Open(ctx, "alpha"))
		assert.Empty(t, opener.opened)
	})

	t.Run("opener failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mock.NewMockCommandGateway(ctrl)
		svc := NewPathService(gw, &spyOpener{err: errors.New("no handler")}, logger.Nop())

		gw.EXPECT().ResolvePath(gomock.Any(), "alpha").Return("/lib/alpha", nil)

		var perr *PathResolutionError
		require.ErrorAs(t, svc.Open(ctx, "alpha"), &perr)
		assert.Equal(t, "/lib/alpha", perr.Path)
	})
}
