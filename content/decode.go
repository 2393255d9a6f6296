package content

import (
	"bytes"
	"encoding/json"

	goerrors "github.com/goliatone/go-errors"
)

const parseFailedCode = "PARSE_FAILED"

// wrapParse tags decode failures so the store can distinguish malformed
// payloads from transport errors.
func wrapParse(err error, resource string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "decode "+resource+" payload").
		WithTextCode(parseFailedCode)
}

// IsParseError reports whether err is a payload decode failure.
func IsParseError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}

// DecodeNews decodes the news seed payload (a bare array).
func DecodeNews(data []byte) ([]NewsItem, error) {
	var items []NewsItem
	if err := decodeJSON(data, &items); err != nil {
		return nil, wrapParse(err, CollectionNews)
	}
	return items, nil
}

// DecodeWorkshops decodes the workshops seed payload (a bare array).
func DecodeWorkshops(data []byte) ([]Workshop, error) {
	var items []Workshop
	if err := decodeJSON(data, &items); err != nil {
		return nil, wrapParse(err, CollectionWorkshops)
	}
	return items, nil
}

// DecodeResearch decodes the research seed payload (a bare array).
func DecodeResearch(data []byte) ([]ResearchItem, error) {
	var items []ResearchItem
	if err := decodeJSON(data, &items); err != nil {
		return nil, wrapParse(err, CollectionResearch)
	}
	return items, nil
}

// partnersEnvelope is the object variant of the partners/team wire shape.
type partnersEnvelope struct {
	Team       []Partner `json:"team"`
	Consortium []Partner `json:"consortium"`
}

// DecodePartners normalizes every accepted partners wire shape into a flat
// slice: a bare array, or an object carrying a "team" or "consortium" array.
// The decode happens at the boundary so merge only ever sees the canonical
// collection.
func DecodePartners(data []byte) ([]Partner, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env partnersEnvelope
		if err := decodeJSON(trimmed, &env); err != nil {
			return nil, wrapParse(err, CollectionPartners)
		}
		if len(env.Team) > 0 {
			return env.Team, nil
		}
		return env.Consortium, nil
	}

	var items []Partner
	if err := decodeJSON(trimmed, &items); err != nil {
		return nil, wrapParse(err, CollectionPartners)
	}
	return items, nil
}

// stationsEnvelope is the object variant of the measurements wire shape.
type stationsEnvelope struct {
	Stations []Station `json:"stations"`
}

// DecodeStations normalizes the measurements payload: either an object
// shaped {"stations": [...]} or a bare station array.
func DecodeStations(data []byte) ([]Station, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env stationsEnvelope
		if err := decodeJSON(trimmed, &env); err != nil {
			return nil, wrapParse(err, CollectionMeasurements)
		}
		return env.Stations, nil
	}

	var items []Station
	if err := decodeJSON(trimmed, &items); err != nil {
		return nil, wrapParse(err, CollectionMeasurements)
	}
	return items, nil
}

// DecodeDataset decodes an export/import bundle.
func DecodeDataset(data []byte) (Dataset, error) {
	var ds Dataset
	if err := decodeJSON(data, &ds); err != nil {
		return Dataset{}, wrapParse(err, "dataset")
	}
	return ds, nil
}

func decodeJSON(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
