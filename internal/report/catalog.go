package report

// The report catalog: a stable, ordered set of named aggregate queries the
// frontend renders as-is. Several reports deliberately group by name rather
// than id (same-named rows merge); that is the documented behavior of the
// catalog, so keep it when touching these.

// ParamCity marks the one report that takes a caller-supplied city string
// (exact match, case-sensitive as stored).
const ParamCity = "city"

type Report struct {
	Name  string `json:"name"`
	Param string `json:"param,omitempty"`
	SQL   string `json:"-"`
}

var Catalog = []Report{
	// Providers & receivers
	{
		Name: "Providers per city",
		SQL:  `SELECT city, COUNT(*) AS total_providers FROM providers GROUP BY city ORDER BY total_providers DESC`,
	},
	{
		Name: "Receivers per city",
		SQL:  `SELECT city, COUNT(*) AS total_receivers FROM receivers GROUP BY city ORDER BY total_receivers DESC`,
	},
	{
		Name: "Top food provider types",
		SQL:  `SELECT type, COUNT(*) AS contributions FROM providers GROUP BY type ORDER BY contributions DESC`,
	},
	{
		Name:  "Provider contacts by city",
		Param: ParamCity,
		SQL:   `SELECT name, type, contact FROM providers WHERE city = ? ORDER BY name`,
	},
	{
		Name: "Top receivers by claims",
		SQL: `SELECT r.name, COUNT(c.id) AS claims
			FROM receivers r JOIN claims c ON r.id = c.receiver_id
			GROUP BY r.name ORDER BY claims DESC`,
	},

	// Listings & availability
	{
		Name: "Total food quantity available",
		SQL:  `SELECT SUM(quantity) AS total_quantity FROM food_listings`,
	},
	{
		Name: "City with most food listings",
		SQL: `SELECT location, COUNT(*) AS listings
			FROM food_listings GROUP BY location ORDER BY listings DESC LIMIT 5`,
	},
	{
		Name: "Most common food types",
		SQL:  `SELECT food_type, COUNT(*) AS count FROM food_listings GROUP BY food_type ORDER BY count DESC`,
	},
	{
		Name: "Most common meal types",
		SQL:  `SELECT meal_type, COUNT(*) AS count FROM food_listings GROUP BY meal_type ORDER BY count DESC`,
	},

	// Claims & distribution
	{
		Name: "Claims per food item",
		SQL: `SELECT f.name, COUNT(c.id) AS total_claims
			FROM claims c JOIN food_listings f ON c.food_id = f.id
			GROUP BY f.name ORDER BY total_claims DESC`,
	},
	{
		Name: "Top provider by successful claims",
		SQL: `SELECT p.name, COUNT(*) AS success_claims
			FROM claims c
			JOIN food_listings f ON c.food_id = f.id
			JOIN providers p ON f.provider_id = p.id
			WHERE c.status = 'Completed'
			GROUP BY p.name ORDER BY success_claims DESC LIMIT 5`,
	},
	{
		Name: "Claim status percentage",
		SQL: `SELECT status,
				ROUND(100.0 * COUNT(*) / (SELECT COUNT(*) FROM claims), 2) AS percentage
			FROM claims GROUP BY status`,
	},
	{
		Name: "Average quantity claimed per receiver",
		SQL: `SELECT r.name, ROUND(AVG(f.quantity), 2) AS avg_quantity
			FROM claims c
			JOIN food_listings f ON c.food_id = f.id
			JOIN receivers r ON c.receiver_id = r.id
			GROUP BY r.name ORDER BY avg_quantity DESC`,
	},
	{
		Name: "Most claimed meal type",
		SQL: `SELECT f.meal_type, COUNT(*) AS claims
			FROM food_listings f JOIN claims c ON f.id = c.food_id
			GROUP BY f.meal_type ORDER BY claims DESC`,
	},
	{
		Name: "Total food donated by each provider",
		SQL: `SELECT p.name, SUM(f.quantity) AS total_donated
			FROM providers p JOIN food_listings f ON p.id = f.provider_id
			GROUP BY p.name ORDER BY total_donated DESC`,
	},
	{
		Name: "Top cities by completed claims",
		SQL: `SELECT f.location AS city, COUNT(*) AS completed_claims
			FROM claims c JOIN food_listings f ON c.food_id = f.id
			WHERE c.status = 'Completed'
			GROUP BY f.location ORDER BY completed_claims DESC`,
	},
}
