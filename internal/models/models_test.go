package models

import "testing"

func TestDefaultSiteNavTargetsKnownSections(t *testing.T) {
	known := map[SectionID]bool{
		SectionHero:     true,
		SectionFeatures: true,
		SectionPricing:  true,
		SectionContact:  true,
		SectionFooter:   true,
	}
	site := DefaultSite()
	if len(site.Nav) == 0 {
		t.Fatalf("expected navigation items")
	}
	for _, item := range site.Nav {
		if !known[item.Section] {
			t.Fatalf("nav item %q points at unknown section %q", item.Label, item.Section)
		}
	}
}

func TestDefaultSiteStatsAreAnimatable(t *testing.T) {
	for _, s := range DefaultSite().Stats {
		if s.Value < 0 {
			t.Fatalf("stat %q has a negative value", s.Label)
		}
	}
}

func TestDefaultSiteHasOneHighlightedTier(t *testing.T) {
	count := 0
	for _, tier := range DefaultSite().Tiers {
		if tier.Highlighted {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one highlighted tier, got %d", count)
	}
}
