package generatorimpl

var firstNames = []string{
	"John", "Jane", "Mike", "Sarah", "David", "Alex", "Lisa", "Robert", "Emily", "Tommy",
	"Sofia", "Mark", "Anna", "Chris", "Diana", "Kevin", "Laura", "Brian", "Nicole", "Ryan",
	"Emma", "Daniel", "Olivia", "James", "Ava", "William", "Mia", "Benjamin", "Charlotte", "Lucas",
	"Amelia", "Henry", "Harper", "Alexander", "Evelyn", "Sebastian", "Abigail", "Jack", "Ella", "Owen",
}

var lastNames = []string{
	"Doe", "Smith", "Brown", "Wilson", "Lee", "Cheng", "Marie", "Davis", "Jones", "Nguyen",
	"Patel", "Zhao", "Garcia", "Martinez", "Robinson", "Clark", "Rodriguez", "Lewis", "Walker", "Hall",
	"Allen", "Young", "King", "Wright", "Scott", "Green", "Baker", "Adams", "Nelson", "Hill",
}

var captions = []string{
	"Beautiful sunset! 🌅", "Coffee time ☕", "Workout done! 💪", "Healthy breakfast 🥗",
	"New project launch! 🚀", "Team meeting", "Travel vibes ✈️", "Beach day 🏖️",
	"Food photography 📸", "City lights at night 🌃", "Weekend movie night 🍿🎬",
	"New art supplies! 🎨", "Morning run in the park 🏃‍♀️", "Documentary filmmaking 🎥",
	"Bookstore finds 📚", "Coding marathon day 💻", "Homemade pizza night 🍕",
	"Business conference highlights", "Mountain hiking adventure 🏔️", "Street photography session",
	"Road trip memories 🚗", "Yoga by the beach 🧘‍♀️", "New recipe success! 👨‍🍳",
	"Studio recording session 🎤", "Skateboard tricks practice 🛹", "Gaming session 🎮",
	"Pet adventures 🐕", "Garden vibes 🌻", "Reading time 📖", "Music practice 🎸",
}

var replyMessages = []string{
	"Amazing! 😍", "Love this!", "So cool! 🔥", "Awesome shot!", "Where is this?",
	"Need to try this!", "Beautiful!", "Goals! 💯", "Wow!", "This is great!",
	"Keep it up! 💪", "Incredible view!", "So inspiring!", "Want to be there!",
	"Share more please!", "Looks delicious!", "Nice one!", "Perfect!", "Love it! ❤️",
}
