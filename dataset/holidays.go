package dataset

import (
	"time"

	"crowd-server/models/calendar"
)

// DATE_LAYOUT is the ISO calendar date format used throughout the dataset.
const DATE_LAYOUT = "2006-01-02"

var publicHolidaysKarnataka2026 = []calendar.PublicHoliday{
	{Date: mustDate("2026-01-01"), Name: "New Year's Day"},
	{Date: mustDate("2026-01-14"), Name: "Makara Sankranti"},
	{Date: mustDate("2026-01-26"), Name: "Republic Day"},
	{Date: mustDate("2026-02-04"), Name: "Shab-e-Barat"},
	{Date: mustDate("2026-03-02"), Name: "Holi"},
	{Date: mustDate("2026-03-19"), Name: "Ugadi"},
	{Date: mustDate("2026-04-14"), Name: "Dr. Ambedkar Jayanti"},
	{Date: mustDate("2026-05-01"), Name: "Labour Day"},
	{Date: mustDate("2026-05-28"), Name: "Bakrid / Eid-al-Adha"},
	{Date: mustDate("2026-06-26"), Name: "Last Day of Moharam"},
	{Date: mustDate("2026-08-15"), Name: "Independence Day"},
	{Date: mustDate("2026-08-26"), Name: "Eid-e-Milad"},
	{Date: mustDate("2026-09-14"), Name: "Ganesh Chaturthi"},
	{Date: mustDate("2026-10-02"), Name: "Gandhi Jayanti"},
	{Date: mustDate("2026-10-10"), Name: "Deepavali"},
	{Date: mustDate("2026-11-01"), Name: "Kannada Rajyotsava"},
	{Date: mustDate("2026-12-25"), Name: "Christmas"},
}

var districtOfficialLocalHolidays2026 = []calendar.LocalHoliday{
	{District: "Kodagu", Name: "Kail Muhurtha", Date: mustDate("2026-09-03")},
	{District: "Kodagu", Name: "Tula Sankramana / Kaveri Sankramana", Date: mustDate("2026-10-17")},
	{District: "Kodagu", Name: "Huthri Festival", Date: mustDate("2026-11-26")},
}

var districtFestivals = []calendar.Festival{
	{District: "Bengaluru Urban", Name: "Bengaluru Karaga", Period: period("2026-03-20", "2026-04-05")},
	{District: "Bengaluru Urban", Name: "Kadalekai Parishe", Date: day("2026-11-23")},
	{District: "Mysuru", Name: "Mysuru Dasara", Period: period("2026-10-07", "2026-10-16")},
	{District: "Dakshina Kannada", Name: "Kambala (Buffalo Racing)", Season: period("2025-11-20", "2026-03-30")},
	{District: "Udupi", Name: "Kambala (Buffalo Racing)", Season: period("2025-11-20", "2026-03-30")},
	{District: "Udupi", Name: "Pattanaje", Date: day("2026-05-24")},
	{District: "Shivamogga", Name: "Anegudde Jatra", Date: day("2026-12-14")},
	{District: "Gadag", Name: "Hampi Utsav", Period: period("2026-01-05", "2026-01-12")},
	{District: "Ballari", Name: "Siruguppa Dasara", Period: period("2026-10-07", "2026-10-16")},
	{District: "Hassan", Name: "Belur Chennakeshava Rathotsava", Period: period("2026-04-10", "2026-04-15")},
	{District: "Mandya", Name: "Pandu Ranga Jatre", Period: period("2026-12-10", "2026-12-20")},
	{District: "Chitradurga", Name: "Thipperudra Swamy Jatre", Period: period("2026-01-25", "2026-02-05")},
	{District: "Bagalkot", Name: "Banashankari Jatre", Period: period("2026-01-14", "2026-02-25")},
	{District: "Davangere", Name: "Sri Anjaneya Swamy Jatre", Period: period("2026-03-15", "2026-03-22")},
	{District: "Ramanagara", Name: "Sri Revana Siddeshwara Jatre", Period: period("2026-01-15", "2026-01-22")},
	{District: "Tumakuru", Name: "Siddaganga Jatre", Period: period("2026-01-10", "2026-01-18")},
}

// mustDate parses an ISO date of the static tables; a bad literal is a build defect.
func mustDate(s string) time.Time {
	t, err := time.Parse(DATE_LAYOUT, s)
	if err != nil {
		panic("dataset: invalid date " + s + ": " + err.Error())
	}
	return t
}

func day(s string) *time.Time {
	t := mustDate(s)
	return &t
}

func period(start, end string) *calendar.DateRange {
	return &calendar.DateRange{Start: mustDate(start), End: mustDate(end)}
}
