package catalog

// SeedBooks returns the fixed catalog the service boots with. State is not
// persisted across restarts; every process starts from this list.
func SeedBooks() []Book {
	return []Book{
		{ISBN: "9781491952023", Title: "JavaScript: The Definitive Guide", Author: "David Flanagan"},
		{ISBN: "9781491924464", Title: "You Don't Know JS: Up & Going", Author: "Kyle Simpson"},
		{ISBN: "9781593279509", Title: "Eloquent JavaScript", Author: "Marijn Haverbeke"},
		{ISBN: "9780596517748", Title: "JavaScript: The Good Parts", Author: "Douglas Crockford"},
		{ISBN: "9781933988696", Title: "Secrets of the JavaScript Ninja", Author: "John Resig"},
		{ISBN: "9781449340131", Title: "Head First JavaScript Programming", Author: "Eric Freeman"},
		{ISBN: "9781449331818", Title: "Learning JavaScript Design Patterns", Author: "Addy Osmani"},
		{ISBN: "9780321812186", Title: "Effective JavaScript", Author: "David Herman"},
		{ISBN: "9781491950296", Title: "Programming JavaScript Applications", Author: "Eric Elliott"},
		{ISBN: "9781497408180", Title: "A Smarter Way to Learn JavaScript", Author: "Mark Myers"},
	}
}
