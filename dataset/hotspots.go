package dataset

import "crowd-server/models/hotspot"

var karnatakaHotspots = []hotspot.Hotspot{
	{Name: "Bengaluru Palace", Lat: 12.998, Lng: 77.592, District: "Bengaluru Urban", Type: "Heritage", CrowdScore: 78,
		PeakSeason: []string{"October", "November", "December", "January"}, OffSeason: []string{"April", "May"}},
	{Name: "Lalbagh Botanical Garden", Lat: 12.950, Lng: 77.585, District: "Bengaluru Urban", Type: "Nature Park", CrowdScore: 85,
		PeakSeason: []string{"January", "August"}, OffSeason: []string{"June"}},
	{Name: "Bannerghatta Biological Park", Lat: 12.805, Lng: 77.577, District: "Bengaluru Urban", Type: "Wildlife Safari", CrowdScore: 90,
		PeakSeason: []string{"December", "January", "May"}, OffSeason: []string{"July", "August"}},
	{Name: "Nandi Hills", Lat: 13.370, Lng: 77.683, District: "Chikkaballapur", Type: "Hill Viewpoint", CrowdScore: 95,
		PeakSeason: []string{"September", "October", "November", "December", "January", "February"}, OffSeason: []string{"April", "May"}},
	{Name: "Mysore Palace", Lat: 12.305, Lng: 76.655, District: "Mysuru", Type: "Heritage", CrowdScore: 98,
		PeakSeason: []string{"September", "October", "December"}, OffSeason: []string{"June"}},
	{Name: "Chamundi Hills", Lat: 12.273, Lng: 76.673, District: "Mysuru", Type: "Temple + Hill", CrowdScore: 92,
		PeakSeason: []string{"August", "September"}, OffSeason: []string{"April"}},
	{Name: "Brindavan Gardens", Lat: 12.424, Lng: 76.572, District: "Mandya", Type: "Garden", CrowdScore: 88,
		PeakSeason: []string{"October", "November", "December", "January"}, OffSeason: []string{"June"}},
	{Name: "Coorg", Lat: 12.424, Lng: 75.740, District: "Kodagu", Type: "Hill Station", CrowdScore: 96,
		PeakSeason: []string{"October", "November", "December", "January", "February", "March"}, OffSeason: []string{"June", "July"}},
	{Name: "Abbey Falls", Lat: 12.454, Lng: 75.718, District: "Kodagu", Type: "Waterfall", CrowdScore: 85,
		PeakSeason: []string{"July", "August", "September"}, OffSeason: []string{"April"}},
	{Name: "Chikmagalur", Lat: 13.315, Lng: 75.775, District: "Chikkamagaluru", Type: "Hill Station", CrowdScore: 94,
		PeakSeason: []string{"October", "November", "December", "January", "February"}, OffSeason: []string{"April", "May"}},
	{Name: "Mullayanagiri Peak", Lat: 13.389, Lng: 75.728, District: "Chikkamagaluru", Type: "Trek", CrowdScore: 90,
		PeakSeason: []string{"November", "December"}, OffSeason: []string{"July"}},
	{Name: "Gokarna", Lat: 14.548, Lng: 74.320, District: "Uttara Kannada", Type: "Beach", CrowdScore: 89,
		PeakSeason: []string{"December", "January"}, OffSeason: []string{"June", "July"}},
	{Name: "Murudeshwar", Lat: 14.094, Lng: 74.485, District: "Uttara Kannada", Type: "Temple + Beach", CrowdScore: 92,
		PeakSeason: []string{"January", "February", "December"}, OffSeason: []string{"June"}},
	{Name: "Karwar Beach", Lat: 14.814, Lng: 74.129, District: "Uttara Kannada", Type: "Beach", CrowdScore: 76,
		PeakSeason: []string{"November", "December", "January", "February"}, OffSeason: []string{"June", "July"}},
	{Name: "Hampi", Lat: 15.335, Lng: 76.460, District: "Vijayanagara", Type: "Heritage + Trek", CrowdScore: 95,
		PeakSeason: []string{"November", "December", "January"}, OffSeason: []string{"April", "May"}},
	{Name: "Aihole", Lat: 15.953, Lng: 75.798, District: "Bagalkot", Type: "Heritage", CrowdScore: 65,
		PeakSeason: []string{"December", "January"}, OffSeason: []string{"May"}},
	{Name: "Badami Caves", Lat: 15.917, Lng: 75.678, District: "Bagalkot", Type: "Heritage", CrowdScore: 78,
		PeakSeason: []string{"December", "January"}, OffSeason: []string{"April"}},
	{Name: "Bandipur National Park", Lat: 11.668, Lng: 76.453, District: "Chamarajanagar", Type: "Safari", CrowdScore: 82,
		PeakSeason: []string{"January", "December", "April"}, OffSeason: []string{"July", "August"}},
	{Name: "Kabini Backwaters", Lat: 11.955, Lng: 76.190, District: "Mysuru", Type: "Wildlife + Resort", CrowdScore: 91,
		PeakSeason: []string{"April", "May"}, OffSeason: []string{"July"}},
	{Name: "Jog Falls", Lat: 14.229, Lng: 74.812, District: "Shivamogga", Type: "Waterfall", CrowdScore: 92,
		PeakSeason: []string{"July", "August", "September"}, OffSeason: []string{"February"}},
	{Name: "Agumbe", Lat: 13.513, Lng: 75.091, District: "Shivamogga", Type: "Rainforest", CrowdScore: 66,
		PeakSeason: []string{"October", "November", "December", "January"}, OffSeason: []string{"July"}},
	{Name: "Udupi Sri Krishna Temple", Lat: 13.339, Lng: 74.746, District: "Udupi", Type: "Temple", CrowdScore: 88,
		PeakSeason: []string{"August", "December"}, OffSeason: []string{"June"}},
	{Name: "Malpe Beach", Lat: 13.350, Lng: 74.705, District: "Udupi", Type: "Beach", CrowdScore: 82,
		PeakSeason: []string{"December", "January"}, OffSeason: []string{"June", "July"}},
	{Name: "St Mary's Island", Lat: 13.361, Lng: 74.689, District: "Udupi", Type: "Island", CrowdScore: 85,
		PeakSeason: []string{"December", "January"}, OffSeason: []string{"June", "July", "August"}},
}
