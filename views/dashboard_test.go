package views

import (
	"testing"

	"github.com/deltahub/go-hub/content"
)

func dashboardDataset() content.Dataset {
	return content.Dataset{
		News:      []content.NewsItem{{ID: "1"}, {ID: "2"}},
		Workshops: []content.Workshop{{ID: "w1", Date: "2099-01-01"}, {ID: "w2", Date: "2020-01-01"}},
		Research:  []content.ResearchItem{{ID: "r1"}},
		Partners:  []content.Partner{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}},
		Measurements: []content.Station{
			{ID: "st1", Name: "Sulina", Unit: "m", Timeseries: []content.Sample{{T: "2025-01-01", Level: 1.2}}},
			{ID: "st2", Name: "Tulcea"},
		},
	}
}

func TestDashboardCounts(t *testing.T) {
	view := Dashboard(dashboardDataset(), "2025-06-01", "")

	if view.NewsCount != 2 || view.UpcomingWorkshopCount != 1 || view.ResearchCount != 1 || view.TeamCount != 3 {
		t.Fatalf("unexpected counts: %+v", view)
	}
}

func TestDashboardDefaultStation(t *testing.T) {
	view := Dashboard(dashboardDataset(), "2025-06-01", "")

	if len(view.Stations) != 2 || view.Stations[0].ID != "st1" || view.Stations[1].ID != "st2" {
		t.Fatalf("station list must keep source order: %+v", view.Stations)
	}
	if view.Selected == nil || view.Selected.ID != "st1" {
		t.Fatalf("expected first station selected by default, got %+v", view.Selected)
	}
	if len(view.Selected.Samples) != 1 {
		t.Fatalf("time series not passed through: %+v", view.Selected)
	}
}

func TestDashboardExplicitSelection(t *testing.T) {
	view := Dashboard(dashboardDataset(), "2025-06-01", "st2")
	if view.Selected == nil || view.Selected.Name != "Tulcea" {
		t.Fatalf("expected st2 selected, got %+v", view.Selected)
	}

	// unknown ids fall back to the first station
	view = Dashboard(dashboardDataset(), "2025-06-01", "nope")
	if view.Selected == nil || view.Selected.ID != "st1" {
		t.Fatalf("expected fallback to first station, got %+v", view.Selected)
	}
}

func TestDashboardEmptyMeasurements(t *testing.T) {
	view := Dashboard(content.Dataset{}, "2025-06-01", "")
	if view.Selected != nil || len(view.Stations) != 0 {
		t.Fatalf("expected no selection for empty measurements, got %+v", view)
	}
}
