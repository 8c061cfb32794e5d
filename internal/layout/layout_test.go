package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/timewheel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `radius: 180
slices:
  - label: awake-hours
    start: 7
    end: 23
  - label: work-hours
    start: 9
    end: 17
locations:
  - name: montreal
    hour: 5
  - name: tokyo
    hour: 19
`

func TestParse_YAML(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	assert.Empty(t, Validate(f))

	l := ToDomain(f, 150)
	assert.Equal(t, 180, l.Radius)
	assert.Equal(t, []domain.TimeSlice{
		{Label: "awake-hours", StartHour: 7, EndHour: 23},
		{Label: "work-hours", StartHour: 9, EndHour: 17},
	}, l.Slices)
	assert.Equal(t, []domain.LocationMarker{
		{Name: "montreal", HourOffset: 5},
		{Name: "tokyo", HourOffset: 19},
	}, l.Locations)
}

func TestParse_JSON(t *testing.T) {
	doc := `{"slices":[{"label":"night","start":22,"end":6}],"locations":[{"name":"berlin","hour":10}]}`
	f, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, Validate(f))

	l := ToDomain(f, 150)
	assert.Equal(t, 150, l.Radius, "missing radius falls back")
	require.Len(t, l.Slices, 1)
	assert.Equal(t, 22, l.Slices[0].StartHour)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("slices: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing layout")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	f, err := Parse([]byte(`radius: 10
slices:
  - label: "bad label"
    start: 1
    end: 2
  - start: 3
locations:
  - name: ""
    hour: 4
  - name: nowhere
`))
	require.NoError(t, err)

	errs := Validate(f)
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	assert.Contains(t, msgs, "radius: 10 is too small (minimum 41)")
	assert.Contains(t, msgs, "slices[1].end is required")
	assert.Contains(t, msgs, "slices[1].label is required")
	assert.Contains(t, msgs, "locations[1].hour is required")
	assert.Len(t, errs, 6)
}

func TestValidate_HourRange(t *testing.T) {
	f, err := Parse([]byte(`slices:
  - label: late
    start: 20
    end: 24
`))
	require.NoError(t, err)
	errs := Validate(f)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "slices[0]: slice \"late\": end hour 24")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(sampleYAML), 0644))

	f, err := LoadFile(good)
	require.NoError(t, err)
	assert.Len(t, f.Locations, 2)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("locations:\n  - name: x\n    hour: 30\n"), 0644))
	_, err = LoadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid layout")
	assert.Contains(t, err.Error(), "hour 30")

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading layout file")
}

func TestMarshal_RoundTripsDomain(t *testing.T) {
	want := domain.DefaultLayout()
	data, err := Marshal(FromDomain(want))
	require.NoError(t, err)
	assert.Contains(t, string(data), "label: awake-hours")

	f, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, want, ToDomain(f, 0))
}
