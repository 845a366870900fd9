package analyzer

// AlgorithmInfo is static reference data about one storage scheme. The
// table is read-only and never derived from user input.
type AlgorithmInfo struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Speed       string `json:"speed"`
	Description string `json:"description"`
	UseCase     string `json:"use_case"`
	Year        string `json:"year"`
}

var algorithmInfos = []AlgorithmInfo{
	{
		Name:        "Plain Text",
		Status:      "insecure",
		Speed:       "1000 trillion H/s",
		Description: "No protection - passwords visible to anyone with database access",
		UseCase:     "NEVER use in production systems",
		Year:        "N/A",
	},
	{
		Name:        "MD5",
		Status:      "deprecated",
		Speed:       "180 billion H/s",
		Description: "Fast hashing = fast cracking. Vulnerable to rainbow tables",
		UseCase:     "Do not use for passwords",
		Year:        "Deprecated since 2004",
	},
	{
		Name:        "SHA256",
		Status:      "weak",
		Speed:       "65 billion H/s",
		Description: "Better than MD5 but still too fast. No built-in salting",
		UseCase:     "Use for checksums, NOT for passwords",
		Year:        "Not suitable for passwords",
	},
	{
		Name:        "bcrypt",
		Status:      "secure",
		Speed:       "85 thousand H/s",
		Description: "Slow by design, includes salt, adjustable cost factor",
		UseCase:     "Recommended for password storage",
		Year:        "Since 1999",
	},
	{
		Name:        "Argon2",
		Status:      "most_secure",
		Speed:       "1 thousand H/s",
		Description: "Winner of Password Hashing Competition, memory-hard",
		UseCase:     "Best choice for new systems",
		Year:        "Since 2015",
	},
}

// Algorithms returns a copy of the static algorithm table.
func Algorithms() []AlgorithmInfo {
	out := make([]AlgorithmInfo, len(algorithmInfos))
	copy(out, algorithmInfos)
	return out
}

// Example is a fixed demo password for UI quick-testing. ExpectedScore is
// a display hint, not a scorer contract.
type Example struct {
	Password      string `json:"password"`
	Description   string `json:"description"`
	ExpectedScore int    `json:"expected_score"`
}

var exampleList = []Example{
	{Password: "password", Description: "Very Weak - Common Password", ExpectedScore: 5},
	{Password: "Pass123", Description: "Weak - Short & Predictable", ExpectedScore: 22},
	{Password: "MyP@ssw0rd", Description: "Moderate - Better but Still Risky", ExpectedScore: 55},
	{Password: "Tr0ub4dor&3", Description: "Strong - Good Mix", ExpectedScore: 70},
	{Password: "correct-horse-battery-staple-2024", Description: "Very Strong - Long Passphrase", ExpectedScore: 100},
}

// Examples returns a copy of the fixed example list.
func Examples() []Example {
	out := make([]Example, len(exampleList))
	copy(out, exampleList)
	return out
}
