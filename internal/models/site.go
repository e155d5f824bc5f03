package models

// DefaultSite is the copy for the carebook marketing page.
func DefaultSite() Site {
	return Site{
		Brand:    "carebook",
		Tagline:  "Scheduling that keeps up with your clinic",
		Headline: "Fill every chair. Skip the phone tag.",
		Subhead:  "Online booking, reminders and waitlists for independent practices.",
		Stats: []Stat{
			{Value: 12000, Suffix: "+", Label: "appointments booked weekly"},
			{Value: 480, Label: "clinics onboard"},
			{Value: 38, Suffix: "%", Label: "fewer no-shows"},
		},
		Features: []Feature{
			{Icon: "◷", Title: "Self-serve booking", Description: "Patients pick an open slot from your live calendar."},
			{Icon: "✉", Title: "Smart reminders", Description: "SMS and email nudges timed to each visit type."},
			{Icon: "⇄", Title: "Waitlist backfill", Description: "Cancelled slots are offered to the waitlist in seconds."},
			{Icon: "▤", Title: "Provider views", Description: "Per-room and per-provider schedules on one screen."},
		},
		Tiers: []Tier{
			{
				Name:         "Starter",
				PriceMonthly: 49,
				Tagline:      "For solo practitioners",
				Features:     []string{"1 provider", "Online booking page", "Email reminders"},
			},
			{
				Name:         "Practice",
				PriceMonthly: 149,
				Tagline:      "For growing clinics",
				Features:     []string{"Up to 10 providers", "SMS reminders", "Waitlist backfill", "Intake forms"},
				Highlighted:  true,
			},
			{
				Name:     "Network",
				Tagline:  "For multi-site groups",
				Features: []string{"Unlimited providers", "Cross-site scheduling", "SSO", "Dedicated support"},
			},
		},
		Nav: []NavItem{
			{Label: "Home", Section: SectionHero},
			{Label: "Features", Section: SectionFeatures},
			{Label: "Pricing", Section: SectionPricing},
			{Label: "Contact", Section: SectionContact},
		},
		Footer: []FooterColumn{
			{Heading: "Product", Links: []string{"Booking", "Reminders", "Waitlists", "Integrations"}},
			{Heading: "Company", Links: []string{"About", "Careers", "Press"}},
			{Heading: "Legal", Links: []string{"Privacy", "Terms", "BAA"}},
		},
		Legal: "© carebook. HIPAA-ready scheduling.",
	}
}
