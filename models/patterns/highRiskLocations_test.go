package patterns_test

import (
	"testing"

	"github.com/childfind-ng/childfind_backend/models/patterns"
)

func TestDetectHighRiskLocationsGroupsByLocation(t *testing.T) {
	ctx := setupTestDB(t)

	for _, caseNumber := range []string{"CF-100", "CF-101", "CF-102"} {
		mustCreateCase(t, ctx, caseSpec{
			caseNumber: caseNumber,
			age:        9,
			city:       "Springfield",
			area:       "Downtown",
		})
	}
	mustCreateCase(t, ctx, caseSpec{caseNumber: "CF-103", age: 8, city: "Shelbyville", area: "Riverside"})
	// No area: never part of a hotspot group.
	mustCreateCase(t, ctx, caseSpec{caseNumber: "CF-104", age: 8, city: "Springfield"})

	hotspots, err := patterns.DetectHighRiskLocations(ctx, 2)
	if err != nil {
		t.Fatalf("DetectHighRiskLocations: %v", err)
	}
	if len(hotspots) != 1 {
		t.Fatalf("expected 1 hotspot, got %d", len(hotspots))
	}
	top := hotspots[0]
	if top.MissingLocationCity != "Springfield" || top.MissingLocationArea != "Downtown" {
		t.Fatalf("unexpected hotspot %s/%s", top.MissingLocationCity, top.MissingLocationArea)
	}
	if top.CaseCount != 3 {
		t.Fatalf("expected case_count 3, got %d", top.CaseCount)
	}
	if len(top.CaseNumbers) != 3 {
		t.Fatalf("expected 3 case numbers, got %v", top.CaseNumbers)
	}
}

func TestDetectHighRiskLocationsThreshold(t *testing.T) {
	ctx := setupTestDB(t)

	mustCreateCase(t, ctx, caseSpec{caseNumber: "CF-110", age: 9, city: "Springfield", area: "Downtown"})
	mustCreateCase(t, ctx, caseSpec{caseNumber: "CF-111", age: 7, city: "Springfield", area: "Downtown"})

	// Every returned group must clear the requested threshold.
	hotspots, err := patterns.DetectHighRiskLocations(ctx, 3)
	if err != nil {
		t.Fatalf("DetectHighRiskLocations(3): %v", err)
	}
	if len(hotspots) != 0 {
		t.Fatalf("expected no hotspots at threshold 3, got %d", len(hotspots))
	}

	hotspots, err = patterns.DetectHighRiskLocations(ctx, 2)
	if err != nil {
		t.Fatalf("DetectHighRiskLocations(2): %v", err)
	}
	if len(hotspots) != 1 || hotspots[0].CaseCount < 2 {
		t.Fatalf("expected one hotspot with at least 2 cases, got %+v", hotspots)
	}

	// Thresholds below 1 clamp to the default of 2.
	for _, threshold := range []int{0, -1} {
		hotspots, err = patterns.DetectHighRiskLocations(ctx, threshold)
		if err != nil {
			t.Fatalf("DetectHighRiskLocations(%d): %v", threshold, err)
		}
		if len(hotspots) != 1 || hotspots[0].CaseCount != 2 {
			t.Fatalf("expected threshold %d to behave like %d, got %+v",
				threshold, patterns.DefaultHotspotThreshold, hotspots)
		}
	}
}
