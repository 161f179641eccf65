package model

// Seed returns the built-in first-run data set. It is also the silent
// fallback whenever loading the persisted tree fails. Returned fresh on each
// call so callers can mutate it safely.
func Seed() []Category {
	y := func(n int) *int { v := n; return &v }
	f := func(n float64) *float64 { v := n; return &v }

	return []Category{
		{
			ID:   "h-sapiens-deeptime",
			Name: "Homo sapiens deep time",
			Topics: []Topic{
				{ID: "jebel-irhoud", Title: "Jebel Irhoud ~315kya", Tags: []string{"evidence", "paleo"}, Role: RoleEvidence, Year: y(-315000), Lat: f(31.95), Lng: f(-8.03)},
				{ID: "pushback-age", Title: "Sapiens age pushed back", Tags: []string{"evidence"}, Role: RoleEvidence},
				{ID: "behavioral-stasis", Title: "Anatomical vs behavioral stasis", Tags: []string{"theory"}, Role: RoleDebate},
				{ID: "warm-periods", Title: "Earlier warm periods noted", Tags: []string{"climate"}, Role: RoleTheory},
			},
		},
		{
			ID:   "cataclysms",
			Name: "Cataclysms & collapses",
			Topics: []Topic{
				{ID: "lbac", Title: "Late Bronze Age Collapse", Tags: []string{"history", "collapse"}, Role: RoleEvidence, Year: y(-1200)},
				{ID: "half-degree", Title: "Half-degree shifts topple empires", Tags: []string{"climate"}, Role: RoleTheory},
				{ID: "yd-implications", Title: "Younger Dryas implications", Tags: []string{"spec"}, Role: RoleSpec, Year: y(-12800)},
			},
		},
		{
			ID:   "preservation-bias",
			Name: "Evidence & preservation bias",
			Topics: []Topic{
				{ID: "nine-sites", Title: ">100kya sites: about nine", Tags: []string{"paleo", "critique"}, Role: RoleEvidence},
				{ID: "material-decay", Title: "Material decay 10-100k yrs", Tags: []string{"materials"}, Role: RoleTheory},
				{ID: "sea-level", Title: "Sea-level flux hides coasts", Tags: []string{"coasts"}, Role: RoleTheory},
				{ID: "fossil-selection", Title: "Fossilization selection effects", Tags: []string{"paleo"}, Role: RoleMethod},
			},
		},
		{
			ID:   "gobekli",
			Name: "Göbekli Tepe / Taş Tepeler",
			Topics: []Topic{
				{ID: "gt-12k", Title: "GT ~12kya megaliths", Tags: []string{"site"}, Role: RoleEvidence, Year: y(-10000), Lat: f(37.223), Lng: f(38.923)},
				{ID: "intentional-backfill", Title: "Intentional backfilling", Tags: []string{"site"}, Role: RoleEvidence},
				{ID: "pillar-43", Title: "Pillar 43 calendar debate", Tags: []string{"astro", "debate"}, Role: RoleDebate},
				{ID: "five-percent", Title: "Only 5% excavated", Tags: []string{"method"}, Role: RoleNote},
				{ID: "gap-to-sumer", Title: "6k-year gap to Sumer", Tags: []string{"timeline"}, Role: RoleQuestion},
			},
		},
		{
			ID:   "sahara-egypt",
			Name: "Sahara → Egypt hypothesis",
			Topics: []Topic{
				{ID: "green-sahara", Title: "Green Sahara ~9k yrs", Tags: []string{"climate", "africa"}, Role: RoleEvidence, Year: y(-9000)},
				{ID: "rapid-desert", Title: "Rapid desertification", Tags: []string{"climate"}, Role: RoleEvidence},
				{ID: "nile-migration", Title: "Migration to Nile", Tags: []string{"migration"}, Role: RoleHypothesis},
				{ID: "civ-after-worse", Title: "Civ after climate worsens?", Tags: []string{"puzzle"}, Role: RoleQuestion},
			},
		},
		{
			ID:   "egypt-anomalies",
			Name: "Egypt anomalies / tomb debate",
			Topics: []Topic{
				{ID: "gp-not-tomb", Title: "Great Pyramid tomb claim challenged", Tags: []string{"debate"}, Role: RoleDebate, Lat: f(29.9792), Lng: f(31.1342)},
				{ID: "precision-stone", Title: "Precision stonework astonishment", Tags: []string{"craft"}, Role: RoleEvidence},
				{ID: "vases", Title: "Early dynastic hard-stone vases", Tags: []string{"craft"}, Role: RoleEvidence},
			},
		},
		{
			ID:   "wadi-whales",
			Name: "Wadi Al-Hitan & paleo context",
			Topics: []Topic{
				{ID: "eocene-whales", Title: "Eocene whales/manatees", Tags: []string{"paleo"}, Role: RoleEvidence, Year: y(-40000000), Lat: f(29.27), Lng: f(30.0)},
				{ID: "land-to-sea", Title: "Whales from land mammals", Tags: []string{"evolution"}, Role: RoleEvidence},
			},
		},
		{
			ID:   "kalambo-wood",
			Name: "Kalambo Falls wood structure",
			Topics: []Topic{
				{ID: "notched-timbers", Title: "Notched timbers joinery", Tags: []string{"site", "craft"}, Role: RoleEvidence, Year: y(-476000), Lat: f(-8.6), Lng: f(31.25)},
				{ID: "pre-sapiens", Title: "Pre-sapiens capability?", Tags: []string{"evo"}, Role: RoleDebate},
				{ID: "bog-pres", Title: "Bog/waterlogged preservation", Tags: []string{"preservation"}, Role: RoleMethod},
			},
		},
		{
			ID:   "bottlenecks",
			Name: "Bottlenecks / resets",
			Topics: []Topic{
				{ID: "toba", Title: "Toba eruption ~74kya", Tags: []string{"climate"}, Role: RoleEvidence, Year: y(-74000)},
				{ID: "few-thousand-left", Title: "3k-10k humans left?", Tags: []string{"genetics"}, Role: RoleDebate},
				{ID: "re-emerge", Title: "Re-emergence time", Tags: []string{"recovery"}, Role: RoleQuestion},
			},
		},
		{
			ID:   "antikythera",
			Name: "Antikythera mechanism",
			Topics: []Topic{
				{ID: "ancient-computer", Title: "2k-year-old computer", Tags: []string{"tech", "site"}, Role: RoleEvidence, Year: y(-100)},
				{ID: "prior-tradition", Title: "Implies prior tradition", Tags: []string{"inference"}, Role: RoleHypothesis},
			},
		},
		{
			ID:   "underground-megastructures",
			Name: "Underground megastructures",
			Topics: []Topic{
				{ID: "derinkuyu", Title: "Derinkuyu ~20k capacity", Tags: []string{"site"}, Role: RoleEvidence, Lat: f(38.375), Lng: f(34.733)},
				{ID: "longyou", Title: "Longyou Caves 24 chambers", Tags: []string{"site"}, Role: RoleEvidence, Lat: f(29.05), Lng: f(119.17)},
				{ID: "cataclysm-shelter", Title: "Shelter vs invasion?", Tags: []string{"debate"}, Role: RoleDebate},
				{ID: "hawara", Title: "Hawara labyrinth accounts", Tags: []string{"texts"}, Role: RoleEvidence, Lat: f(29.25), Lng: f(30.9)},
			},
		},
		{
			ID:   "stoneworking",
			Name: "Stoneworking anomalies",
			Topics: []Topic{
				{ID: "unfinished-obelisk", Title: "Unfinished obelisk quarry", Tags: []string{"site"}, Role: RoleEvidence, Lat: f(24.088), Lng: f(32.899)},
				{ID: "serapeum-boxes", Title: "Serapeum granite boxes", Tags: []string{"craft"}, Role: RoleEvidence, Lat: f(29.971), Lng: f(31.132)},
				{ID: "handles-vs-lathe", Title: "Handles vs lathe paradox", Tags: []string{"puzzle"}, Role: RoleDebate},
			},
		},
		{
			ID:   "americas-peopling",
			Name: "Americas peopling debates",
			Topics: []Topic{
				{ID: "nm-footprints", Title: "22kya New Mexico footprints", Tags: []string{"evidence", "americas"}, Role: RoleEvidence, Year: y(-20000)},
				{ID: "cerutti-mastodon", Title: "Cerutti Mastodon 130kya?", Tags: []string{"debate", "americas"}, Role: RoleDebate, Year: y(-130000)},
				{ID: "coastal-route", Title: "Coastal-route plausibility", Tags: []string{"americas"}, Role: RoleHypothesis},
			},
		},
		{
			ID:   "amnesia",
			Name: "Species with amnesia",
			Topics: []Topic{
				{ID: "older", Title: "Things keep getting older", Tags: []string{"mantra"}, Role: RoleNote},
				{ID: "undersea", Title: "Undersea archaeology priority", Tags: []string{"method"}, Role: RoleMethod},
			},
		},
	}
}
