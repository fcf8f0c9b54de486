package workload

var namesPool = []string{
	"Liam", "Olivia", "Noah", "Emma", "Oliver", "Charlotte", "Elijah", "Amelia",
	"James", "Ava", "William", "Sophia", "Benjamin", "Isabella", "Lucas", "Mia",
	"Henry", "Evelyn", "Alexander", "Harper", "Mason", "Ella", "Michael", "Luna",
	"Ethan", "Camila", "Daniel", "Gianna", "Jacob", "Elizabeth", "Logan", "Sofia",
	"Jackson", "Emily", "Levi", "Scarlett", "Sebastian", "Madison", "Mateo",
	"Abigail", "Jack", "Avery", "Owen", "Theodore", "Grace", "Aiden",
	"Chloe", "Samuel", "Victoria", "Joseph", "Riley", "John", "Aria", "David",
	"Lillian", "Wyatt", "Nora", "Matthew", "Zoey", "Luke", "Hannah", "Asher",
	"Hazel", "Carter", "Lily", "Julian", "Ellie", "Grayson", "Violet", "Leo",
	"Aurora", "Jayden", "Savannah", "Gabriel", "Audrey", "Isaac", "Brooklyn",
	"Lincoln", "Bella", "Anthony", "Claire", "Hudson", "Skylar", "Dylan",
	"Lucy", "Ezra", "Paisley", "Thomas", "Everly", "Charles", "Anna", "Christopher",
	"Caroline", "Jaxon", "Nova", "Maverick", "Genesis", "Josiah", "Emilia",
	"Isaiah", "Kennedy", "Andrew", "Samantha", "Elias", "Maya", "Joshua",
	"Willow", "Nathan", "Kinsley", "Caleb", "Naomi", "Ryan", "Aaliyah", "Adrian",
	"Elena", "Miles", "Sarah", "Eli", "Ariana", "Nolan", "Allison", "Christian",
	"Gabriella", "Aaron", "Alice", "Cameron", "Madelyn", "Ezekiel", "Cora",
	"Colton", "Ruby", "Luca", "Eva", "Landon", "Serenity", "Hunter", "Autumn",
	"Jonathan", "Adeline", "Santiago", "Hailey", "Axel", "Easton",
	"Isla", "Cooper", "Freya", "Jeremiah", "Ivy", "Angel", "Josephine", "Roman",
	"Emery", "Connor", "Piper", "Jameson", "Raelynn", "Robert", "Athena", "Greyson",
	"Eleanor", "Jordan", "Everleigh", "Ian", "Melody", "Carson", "Leah",
}

var devicePool = []string{
	"computer", "PC", "workstation", "laptop", "desktop", "notebook",
	"machine", "device",
}
