package consts_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/stretchr/testify/require"
)

func TestErrorDetail(t *testing.T) {
	err := consts.ErrorsIllegalMove.Detail("card %s not in hand", "red 5")
	require.Equal(t, "Illegal move. card red 5 not in hand", err.Error())
	require.True(t, errors.Is(err, consts.ErrorsIllegalMove))
	require.False(t, errors.Is(err, consts.ErrorsOutOfTurn))
}

func TestErrorIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("draw: %w", consts.ErrorsOutOfTurn)
	require.True(t, errors.Is(err, consts.ErrorsOutOfTurn))

	var target consts.Error
	require.True(t, errors.As(err, &target))
	require.Equal(t, consts.CodeOutOfTurn, target.Code)
}
