package synth

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Dorothy", "Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna",
	"Kenneth", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
	"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
	"Jeffrey", "Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
	"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
}

var cities = []string{
	"Springfield", "Riverton", "Fairview", "Kingston", "Greenville", "Bristol",
	"Clinton", "Salem", "Madison", "Georgetown", "Arlington", "Ashland",
	"Burlington", "Clayton", "Dayton", "Dover", "Franklin", "Hudson",
	"Lakewood", "Milton", "Newport", "Oxford", "Princeton", "Winchester",
}

var productWords = []string{
	"product", "service", "platform", "digital", "cloud", "data", "system",
	"network", "security", "performance", "solution", "integration", "analytics",
	"automation", "infrastructure", "management", "enterprise", "scalable",
	"reliable", "efficient", "innovative", "modern", "advanced", "premium",
	"professional", "dynamic", "global", "strategic", "apex", "summit",
	"horizon", "vertex", "prism", "quartz", "cobalt", "ember",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "protonmail.com",
	"icloud.com", "mail.com", "fastmail.com", "zoho.com", "aol.com",
	"example.com", "test.com", "company.org", "corp.net", "business.io",
}
