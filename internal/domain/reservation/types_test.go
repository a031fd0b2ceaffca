//go:build unit

package reservation_test

import (
	"testing"

	"store-reservation/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		name  string
		code  string
		want  reservation.Status
		errIs error
	}{
		{name: "requesting", code: "REQUESTING", want: reservation.StatusRequesting},
		{name: "confirm", code: "CONFIRM", want: reservation.StatusConfirm},
		{name: "refused", code: "REFUSED", want: reservation.StatusRefused},
		{name: "arrived", code: "ARRIVED", want: reservation.StatusArrived},
		{name: "use complete", code: "USE_COMPLETE", want: reservation.StatusUseComplete},
		{name: "no show", code: "NO_SHOW", want: reservation.StatusNoShow},
		{name: "lower case accepted", code: "confirm", want: reservation.StatusConfirm},
		{name: "surrounding spaces accepted", code: "  NO_SHOW  ", want: reservation.StatusNoShow},
		{name: "blank is a distinct failure", code: "", errIs: reservation.ErrStatusCodeRequired},
		{name: "whitespace only is blank", code: "   ", errIs: reservation.ErrStatusCodeRequired},
		{name: "unknown code", code: "CANCELLED", errIs: reservation.ErrStatusCodeInvalid},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := reservation.ParseStatus(c.code)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, reservation.StatusRefused.IsTerminal())
	assert.True(t, reservation.StatusUseComplete.IsTerminal())
	assert.True(t, reservation.StatusNoShow.IsTerminal())
	assert.False(t, reservation.StatusRequesting.IsTerminal())
	assert.False(t, reservation.StatusConfirm.IsTerminal())
	assert.False(t, reservation.StatusArrived.IsTerminal())
}
