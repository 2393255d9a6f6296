package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Collection names as used for durable storage keys and remote endpoints.
const (
	CollectionNews         = "news"
	CollectionWorkshops    = "workshops"
	CollectionResearch     = "research"
	CollectionPartners     = "partners"
	CollectionMeasurements = "measurements"
)

// CollectionNames returns every known collection in canonical order.
func CollectionNames() []string {
	return []string{
		CollectionNews,
		CollectionWorkshops,
		CollectionResearch,
		CollectionPartners,
		CollectionMeasurements,
	}
}

// ID identifies an item within its collection. Seed data assigns integers or
// strings; locally created items use a strictly increasing millisecond
// timestamp. Both wire shapes decode into the same string form so merge keys
// compare consistently.
type ID string

// UnmarshalJSON accepts both JSON numbers and strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case json.Number:
		*id = ID(v.String())
	case string:
		*id = ID(v)
	case nil:
		*id = ""
	default:
		return fmt.Errorf("content: unsupported id type %T", raw)
	}
	return nil
}

// MarshalJSON writes numeric-looking ids back as numbers so round trips
// preserve the seed files' wire shape.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return json.Marshal(n)
	}
	return json.Marshal(string(id))
}

// IsZero reports whether the id is unset.
func (id ID) IsZero() bool { return id == "" }

// MediaType distinguishes attached media renderings.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Media is an optional attachment on a news item.
type Media struct {
	Type MediaType `json:"type"`
	URL  string    `json:"url"`
}

// NewsItem is a dated announcement. Content is either inline (raw text or
// markdown) or referenced through ContentFile; ContentHTML holds the
// rendering produced during markdown resolution.
type NewsItem struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content,omitempty"`
	ContentFile string `json:"content_file,omitempty"`
	ContentHTML string `json:"content_html,omitempty"`
	Author      string `json:"author,omitempty"`
	Date        string `json:"date,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Media       *Media `json:"media,omitempty"`
}

// Key implements Item.
func (n NewsItem) Key() ID { return n.ID }

// Workshop is a scheduled or completed event. Date doubles as the
// upcoming/past partition key.
type Workshop struct {
	ID               ID     `json:"id"`
	Title            string `json:"title"`
	Date             string `json:"date,omitempty"`
	Location         string `json:"location,omitempty"`
	Description      string `json:"description,omitempty"`
	DescriptionFile  string `json:"description_file,omitempty"`
	DescriptionHTML  string `json:"description_html,omitempty"`
	RegistrationLink string `json:"registration_link,omitempty"`
	MaterialsLink    string `json:"materials_link,omitempty"`
}

// Key implements Item.
func (w Workshop) Key() ID { return w.ID }

// ResearchType drives the badge styling on the research page.
type ResearchType string

const (
	ResearchPublication ResearchType = "publication"
	ResearchReport      ResearchType = "report"
	ResearchOther       ResearchType = "other"
)

// ResearchItem is a publication, report, or other research output.
type ResearchItem struct {
	ID              ID           `json:"id"`
	Title           string       `json:"title"`
	Type            ResearchType `json:"type,omitempty"`
	Date            string       `json:"date,omitempty"`
	Description     string       `json:"description,omitempty"`
	DescriptionFile string       `json:"description_file,omitempty"`
	DescriptionHTML string       `json:"description_html,omitempty"`
	Authors         string       `json:"authors,omitempty"`
	URL             string       `json:"url,omitempty"`
	DownloadURL     string       `json:"download_url,omitempty"`
}

// Key implements Item.
func (r ResearchItem) Key() ID { return r.ID }

// Partner is a consortium member or team member.
type Partner struct {
	ID              ID     `json:"id"`
	Name            string `json:"name"`
	Country         string `json:"country,omitempty"`
	Role            string `json:"role,omitempty"`
	Photo           string `json:"photo,omitempty"`
	Description     string `json:"description,omitempty"`
	DescriptionFile string `json:"description_file,omitempty"`
	DescriptionHTML string `json:"description_html,omitempty"`
	Website         string `json:"website,omitempty"`
	LinkedIn        string `json:"linkedin,omitempty"`
	ResearchGate    string `json:"researchgate,omitempty"`
}

// Key implements Item.
func (p Partner) Key() ID { return p.ID }

// Sample is one measurement reading.
type Sample struct {
	T     string  `json:"t"`
	Level float64 `json:"level"`
}

// Station is a measurement station with its chronological time series.
// The series is append-only at the source and never mutated locally.
type Station struct {
	ID         ID       `json:"id"`
	Name       string   `json:"name"`
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	Unit       string   `json:"unit,omitempty"`
	Timeseries []Sample `json:"timeseries,omitempty"`
}

// Key implements Item.
func (s Station) Key() ID { return s.ID }

// Dataset bundles every collection the store manages. It is also the wire
// shape for export and import bundles; absent collections stay nil.
type Dataset struct {
	News         []NewsItem     `json:"news,omitempty"`
	Workshops    []Workshop     `json:"workshops,omitempty"`
	Research     []ResearchItem `json:"research,omitempty"`
	Partners     []Partner      `json:"partners,omitempty"`
	Measurements []Station      `json:"measurements,omitempty"`
}

// Empty reports whether every collection is empty.
func (d Dataset) Empty() bool {
	return len(d.News) == 0 &&
		len(d.Workshops) == 0 &&
		len(d.Research) == 0 &&
		len(d.Partners) == 0 &&
		len(d.Measurements) == 0
}

// Clone returns a deep-enough copy: slices are duplicated so callers can
// sort or trim without touching the store's state. Item values are copied
// by value; nested Media pointers are duplicated.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		News:         make([]NewsItem, len(d.News)),
		Workshops:    append([]Workshop(nil), d.Workshops...),
		Research:     append([]ResearchItem(nil), d.Research...),
		Partners:     append([]Partner(nil), d.Partners...),
		Measurements: make([]Station, len(d.Measurements)),
	}
	for i, n := range d.News {
		if n.Media != nil {
			media := *n.Media
			n.Media = &media
		}
		out.News[i] = n
	}
	for i, s := range d.Measurements {
		s.Timeseries = append([]Sample(nil), s.Timeseries...)
		out.Measurements[i] = s
	}
	return out
}
