package dataset

// DistrictKeyword lists the free-text aliases that resolve to a district.
type DistrictKeyword struct {
	District string
	Keywords []string
}

// DEFAULT_DISTRICT is used when no keyword matches a destination.
const DEFAULT_DISTRICT = "Bengaluru Urban"

// Order matters: resolution is first match wins.
var districtKeywords = []DistrictKeyword{
	{District: "Bengaluru Urban", Keywords: []string{"bangalore", "bengaluru", "namma bengaluru"}},
	{District: "Mysuru", Keywords: []string{"mysore", "mysuru"}},
	{District: "Kodagu", Keywords: []string{"coorg", "kodagu", "madikeri"}},
	{District: "Dakshina Kannada", Keywords: []string{"mangalore", "mangaluru", "dakshina kannada"}},
	{District: "Udupi", Keywords: []string{"udupi", "manipal"}},
	{District: "Shivamogga", Keywords: []string{"shivamogga", "shimoga", "jog falls"}},
	{District: "Hassan", Keywords: []string{"hassan", "belur", "halebidu"}},
	{District: "Mandya", Keywords: []string{"mandya", "srirangapatna"}},
	{District: "Kolar", Keywords: []string{"kolar", "kolar gold fields"}},
	{District: "Chitradurga", Keywords: []string{"chitradurga", "molakalmuru"}},
	{District: "Bagalkot", Keywords: []string{"badami", "bagalkot", "aihole", "pattadakal"}},
	{District: "Davangere", Keywords: []string{"davangere"}},
	{District: "Ramanagara", Keywords: []string{"ramanagara", "ramdevarabetta"}},
	{District: "Tumakuru", Keywords: []string{"tumkur", "tumakuru", "siddaganga"}},
	{District: "Ballari", Keywords: []string{"bellary", "ballari", "hampi"}},
	{District: "Gadag", Keywords: []string{"gadag", "lakkundi"}},
	{District: "Chikkamagaluru", Keywords: []string{"chikmagalur", "chikkamagaluru"}},
	{District: "Uttara Kannada", Keywords: []string{"gokarna", "murudeshwar", "karwar"}},
	{District: "Chamarajanagar", Keywords: []string{"bandipur", "chamarajanagar"}},
}
