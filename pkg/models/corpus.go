package models

// Recipe is a verified cookbook recipe from the cookbooks collection.
type Recipe struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Tags          []string `json:"tags"`
	Imports       []string `json:"imports"`
	Code          string   `json:"code"`
	Notes         string   `json:"notes"`
	GerbilVersion string   `json:"gerbil_version"`
	Deprecated    bool     `json:"deprecated"`
}

// SecurityRule is a vulnerability pattern from the security-rules collection.
type SecurityRule struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Severity    string   `json:"severity"`
	Scope       string   `json:"scope"`
	Message     string   `json:"message"`
	Remediation string   `json:"remediation"`
	Tags        []string `json:"tags"`
}

// ErrorFix maps a compiler or runtime error pattern to its fix.
type ErrorFix struct {
	ID           string `json:"id"`
	Pattern      string `json:"pattern"`
	Fix          string `json:"fix"`
	CodeExample  string `json:"code_example"`
	WrongExample string `json:"wrong_example"`
	Type         string `json:"type"`
}
