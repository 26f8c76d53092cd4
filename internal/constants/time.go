package constants

// Sample entries seeded into a fresh session.
const (
	SampleDayEntryName       = "Mowing lawns"
	SampleOvernightEntryName = "Overnight security watch"
)
