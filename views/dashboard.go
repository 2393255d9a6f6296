package views

import "github.com/deltahub/go-hub/content"

// StationOption is one entry in the dashboard's station picker, in source
// order.
type StationOption struct {
	ID   content.ID
	Name string
}

// StationSeries is the chart payload for one station: location plus its
// chronological time series, passed through untouched.
type StationSeries struct {
	ID      content.ID
	Name    string
	Unit    string
	Lat     float64
	Lon     float64
	Samples []content.Sample
}

// DashboardView aggregates counts across collections and selects one
// station's series for the chart.
type DashboardView struct {
	NewsCount             int
	UpcomingWorkshopCount int
	ResearchCount         int
	TeamCount             int
	Stations              []StationOption
	Selected              *StationSeries
}

// Dashboard projects the measurements dashboard. An empty selected id picks
// the first station in source order; so does an unknown one.
func Dashboard(ds content.Dataset, today string, selected content.ID) DashboardView {
	upcoming, _ := PartitionWorkshops(ds.Workshops, today)

	view := DashboardView{
		NewsCount:             len(ds.News),
		UpcomingWorkshopCount: len(upcoming),
		ResearchCount:         len(ds.Research),
		TeamCount:             len(ds.Partners),
	}

	for _, station := range ds.Measurements {
		view.Stations = append(view.Stations, StationOption{ID: station.ID, Name: station.Name})
	}

	pick := -1
	for i, station := range ds.Measurements {
		if station.ID == selected {
			pick = i
			break
		}
	}
	if pick < 0 && len(ds.Measurements) > 0 {
		pick = 0
	}
	if pick >= 0 {
		station := ds.Measurements[pick]
		view.Selected = &StationSeries{
			ID:      station.ID,
			Name:    station.Name,
			Unit:    station.Unit,
			Lat:     station.Lat,
			Lon:     station.Lon,
			Samples: append([]content.Sample(nil), station.Timeseries...),
		}
	}
	return view
}
