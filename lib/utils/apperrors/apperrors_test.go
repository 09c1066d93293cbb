package apperrors

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	t.Run(`constructors carry their kind`, func(t *testing.T) {
		require.Equal(t, KindNotFound, GetKind(NotFound("missing %s", "row")))
		require.Equal(t, KindConflict, GetKind(Conflict("busy")))
		require.Equal(t, KindInvalidArgument, GetKind(InvalidArgument("bad input")))
	})

	t.Run(`plain errors are internal`, func(t *testing.T) {
		require.Equal(t, KindInternal, GetKind(errors.New("boom")))
	})

	t.Run(`kind survives wrapping`, func(t *testing.T) {
		err := errors.Wrap(NotFound("application not found"), "transition failed")
		require.Equal(t, KindNotFound, GetKind(err))
		require.True(t, IsKind(err, KindNotFound))
	})

	t.Run(`wrap attaches kind to a cause`, func(t *testing.T) {
		err := Wrap(errors.New("duplicate key"), KindConflict, "save failed")
		require.Equal(t, KindConflict, GetKind(err))
		require.Contains(t, err.Error(), "save failed")
	})

	t.Run(`wrap of nil is nil`, func(t *testing.T) {
		require.Nil(t, Wrap(nil, KindConflict, "save failed"))
	})
}

func TestHTTPStatus(t *testing.T) {
	require.Equal(t, fiber.StatusNotFound, HTTPStatus(NotFound("nope")))
	require.Equal(t, fiber.StatusConflict, HTTPStatus(Conflict("nope")))
	require.Equal(t, fiber.StatusBadRequest, HTTPStatus(InvalidArgument("nope")))
	require.Equal(t, fiber.StatusInternalServerError, HTTPStatus(errors.New("nope")))
}
