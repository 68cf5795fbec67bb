package jobpost

// Locations are the districts offered by the location select.
var Locations = []string{
	"Thiruvananthapuram",
	"Kollam",
	"Pathanamthitta",
	"Alappuzha",
	"Kottayam",
	"Idukki",
	"Ernakulam",
	"Thrissur",
	"Palakkad",
	"Malappuram",
	"Kozhikode",
	"Wayanad",
	"Kannur",
	"Kasaragod",
}

// JobTypes are the employment types offered by the job type select.
var JobTypes = []string{
	"Full-time",
	"Part-time",
	"Contract",
	"Internship",
	"Temporary",
}
