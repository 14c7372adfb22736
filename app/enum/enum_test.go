package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "night", want: ModeNight},
		{in: "day", want: ModeDay},
		{in: "DAY", want: ModeDay},
		{in: "", want: ModeNight},
		{in: "dusk", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			m, err := ParseMode(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.False(t, m.IsDay())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, m)
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "night", ModeNight.String())
	assert.Equal(t, "day", ModeDay.String())
	assert.Equal(t, []string{"night", "day"}, ModeNames)
}

func TestMode_JSON(t *testing.T) {
	var v struct {
		Mode Mode `json:"mode"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"day"}`), &v))
	assert.Equal(t, ModeDay, v.Mode)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"day"}`, string(out))

	err = json.Unmarshal([]byte(`{"mode":"noon"}`), &v)
	require.Error(t, err)
}

func TestParseAnimation(t *testing.T) {
	for _, a := range AnimationValues {
		t.Run(a.String(), func(t *testing.T) {
			got, err := ParseAnimation(a.String())
			require.NoError(t, err)
			assert.Equal(t, a, got)
		})
	}

	got, err := ParseAnimation("")
	require.NoError(t, err)
	assert.Equal(t, AnimationNone, got)

	_, err = ParseAnimation("spin")
	require.Error(t, err)
}

func TestMotions(t *testing.T) {
	names := make([]string, 0, len(Motions))
	for _, a := range Motions {
		names = append(names, a.String())
	}
	assert.Equal(t, []string{"twinkle", "float", "drift"}, names)
	assert.NotContains(t, Motions, AnimationNone)
}

func TestAnimation_CSSClass(t *testing.T) {
	assert.Equal(t, "animate-star-twinkle", AnimationTwinkle.CSSClass())
	assert.Equal(t, "animate-star-float", AnimationFloat.CSSClass())
	assert.Equal(t, "animate-star-drift", AnimationDrift.CSSClass())
	assert.Equal(t, "tint-200", AnimationTwinkle.Tint())
	assert.Equal(t, "tint-100", AnimationFloat.Tint())
	assert.Equal(t, "tint-300", AnimationDrift.Tint())
}
