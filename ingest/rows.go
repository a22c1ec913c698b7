package ingest

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/pulseboard/pulseboard/model"
)

// ParseRows parses an uploaded file into a sequence of key/value rows. The
// format is picked by file extension: .csv expects a header row, .json accepts
// either an array of objects or a single object. Any structural failure,
// including an unsupported extension, is an ErrInvalidFormat: the whole batch
// is rejected, there is no partial ingestion.
func ParseRows(filename string, data []byte) ([]map[string]interface{}, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSVRows(data)
	case ".json":
		return parseJSONRows(data)
	default:
		return nil, errors.Wrapf(model.ErrInvalidFormat, "unsupported file extension %q", filepath.Ext(filename))
	}
}

func parseCSVRows(data []byte) ([]map[string]interface{}, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(model.ErrInvalidFormat, err.Error())
	}
	if len(records) == 0 {
		return []map[string]interface{}{}, nil
	}

	header := records[0]
	rows := make([]map[string]interface{}, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]interface{}, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseJSONRows(data []byte) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err == nil {
		return rows, nil
	}

	// A single object is accepted as a one-row batch.
	var row map[string]interface{}
	if err := json.Unmarshal(data, &row); err == nil {
		return []map[string]interface{}{row}, nil
	}

	return nil, errors.Wrap(model.ErrInvalidFormat, "payload is not a JSON object or array of objects")
}
