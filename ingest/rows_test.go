package ingest

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulseboard/model"
)

func TestParseRowsCSV(t *testing.T) {
	data := []byte("caption,likes_count,shares\nhello world,5,2\nsecond post,0,1\n")

	rows, err := ParseRows("export.csv", data)
	require.Nil(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "hello world", rows[0]["caption"])
	assert.Equal(t, "5", rows[0]["likes_count"])
	assert.Equal(t, "second post", rows[1]["caption"])
}

func TestParseRowsCSVHeaderOnly(t *testing.T) {
	rows, err := ParseRows("export.csv", []byte("caption,likes\n"))
	require.Nil(t, err)
	assert.Empty(t, rows)
}

func TestParseRowsMalformedCSV(t *testing.T) {
	_, err := ParseRows("export.csv", []byte("caption,likes\n\"unterminated,5\n"))
	assert.True(t, errors.Is(err, model.ErrInvalidFormat))
}

func TestParseRowsJSONArray(t *testing.T) {
	data := []byte(`[{"caption": "first", "likes": 3}, {"caption": "second"}]`)

	rows, err := ParseRows("export.json", data)
	require.Nil(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "first", rows[0]["caption"])
	assert.Equal(t, float64(3), rows[0]["likes"])
}

func TestParseRowsJSONSingleObject(t *testing.T) {
	rows, err := ParseRows("export.json", []byte(`{"caption": "only one"}`))
	require.Nil(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "only one", rows[0]["caption"])
}

func TestParseRowsMalformedJSON(t *testing.T) {
	_, err := ParseRows("export.json", []byte(`[{"caption": "broken"`))
	assert.True(t, errors.Is(err, model.ErrInvalidFormat))
}

func TestParseRowsJSONArrayOfScalars(t *testing.T) {
	_, err := ParseRows("export.json", []byte(`[1, 2, 3]`))
	assert.True(t, errors.Is(err, model.ErrInvalidFormat))
}

func TestParseRowsUnsupportedExtension(t *testing.T) {
	_, err := ParseRows("export.xlsx", []byte("whatever"))
	assert.True(t, errors.Is(err, model.ErrInvalidFormat))
}
