package civil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	d, err := Parse("2025-07-30")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.July, 30), d)

	d, err = Parse("2025-07-30T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-30", d.String())

	d, err = Parse("  ")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = Parse("30/07/2025")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	var v struct {
		When Date `json:"when"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"when":"2022-03-15"}`), &v))
	assert.Equal(t, "2022-03-15", v.When.String())

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"when":"2022-03-15"}`, string(b))

	require.NoError(t, json.Unmarshal([]byte(`{"when":null}`), &v))
	assert.True(t, v.When.IsZero())
}

func TestDate_YAML(t *testing.T) {
	var v struct {
		When Date `yaml:"when"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("when: 2023-06-05\n"), &v))
	assert.Equal(t, NewDate(2023, time.June, 5), v.When)
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2021-11-30"))
	assert.Equal(t, "2021-11-30", d.String())

	require.NoError(t, d.Scan(time.Date(2020, 8, 5, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2020-08-05", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
