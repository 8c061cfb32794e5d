package cli

import (
	"testing"

	"github.com/alexanderramin/timewheel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDesignState_FromDefaults(t *testing.T) {
	st := newDesignState(domain.DefaultLayout())
	assert.Equal(t, []string{"awake-hours", "work-hours", "social-hours"}, st.Slices)
	assert.Equal(t, "", st.ExtraSlices)
	assert.Equal(t, "montreal:5, san francisco:2, berlin:10", st.Locations)
	assert.Equal(t, "150", st.Radius)

	l, err := st.layout()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLayout(), l)
}

func TestDesignState_Layout(t *testing.T) {
	st := &designState{
		Slices:      []string{"social-hours", "awake-hours"},
		ExtraSlices: "gym:6-7",
		Locations:   "tokyo:18",
		Radius:      "",
	}
	l, err := st.layout()
	require.NoError(t, err)

	var labels []string
	for _, s := range l.Slices {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"awake-hours", "social-hours", "gym"}, labels)
	assert.Equal(t, []domain.LocationMarker{{Name: "tokyo", HourOffset: 18}}, l.Locations)
	assert.Equal(t, domain.DefaultRadius, l.Radius)
}

func TestNewDesignState_KeepsCustomSlices(t *testing.T) {
	st := newDesignState(domain.Layout{
		Radius: 200,
		Slices: []domain.TimeSlice{{Label: "gym", StartHour: 6, EndHour: 7}, {Label: "work-hours", StartHour: 9, EndHour: 17}},
	})
	assert.Equal(t, []string{"work-hours"}, st.Slices)
	assert.Equal(t, "gym:6-7", st.ExtraSlices)
	assert.Equal(t, "", st.Locations)
}

func TestDesignState_LayoutErrors(t *testing.T) {
	_, err := (&designState{Radius: "20"}).layout()
	assert.Error(t, err)

	_, err = (&designState{ExtraSlices: "gym"}).layout()
	assert.Error(t, err)

	_, err = (&designState{Locations: "tokyo:99"}).layout()
	assert.Error(t, err)
}

func TestValidateRadius(t *testing.T) {
	assert.NoError(t, validateRadius(""))
	assert.NoError(t, validateRadius("150"))
	assert.Error(t, validateRadius("abc"))
	assert.Error(t, validateRadius("-5"))
	assert.Error(t, validateRadius("40"))
}

func TestDesignForm_Builds(t *testing.T) {
	st := newDesignState(domain.DefaultLayout())
	assert.NotNil(t, designForm(st))
	assert.NotNil(t, wheelHuhTheme())
}
