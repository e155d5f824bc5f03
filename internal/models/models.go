package models

// SectionID names a scroll destination on the page.
type SectionID string

const (
	SectionHero     SectionID = "hero"
	SectionFeatures SectionID = "features"
	SectionPricing  SectionID = "pricing"
	SectionContact  SectionID = "contact"
	SectionFooter   SectionID = "footer"
)

// Stat is an animated headline number in the hero.
type Stat struct {
	Value  float64
	Suffix string
	Label  string
}

// Feature is one card in the features grid.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Tier is a pricing plan. PriceMonthly is in whole dollars; zero means "contact sales".
type Tier struct {
	Name         string
	PriceMonthly int
	Tagline      string
	Features     []string
	Highlighted  bool
}

// NavItem is an entry of the navigation menu.
type NavItem struct {
	Label   string
	Section SectionID
}

// FooterColumn groups footer links under a heading.
type FooterColumn struct {
	Heading string
	Links   []string
}

// Site is the full copy deck the page is rendered from.
type Site struct {
	Brand    string
	Tagline  string
	Headline string
	Subhead  string
	Stats    []Stat
	Features []Feature
	Tiers    []Tier
	Nav      []NavItem
	Footer   []FooterColumn
	Legal    string
}
